// Package normalize converts the free-form numeric and date literals found in
// bank statement exports into typed values. Statements from different
// providers mix EU and US number formats and several date conventions, so
// both parsers are deliberately lenient: a literal that cannot be understood
// degrades to a zero value instead of failing the whole statement.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	parenWrapped = regexp.MustCompile(`^\(.*\)$`)
	currencyOrWS = regexp.MustCompile(`[\s€$£]`)
)

// ParseNumber parses a monetary literal in any of the formats seen in
// statement exports: `€1,234.56`, `(123.45)`, `123-`, `1.234,56`, `"1,234.56"`.
// It is a total function; unparseable input yields 0.0.
func ParseNumber(val string) float64 {
	val = strings.Trim(strings.TrimSpace(val), `"`)
	if val == "" {
		return 0.0
	}

	// Negativity cues combine with OR: (...) wrapping, trailing or leading minus.
	hasParens := parenWrapped.MatchString(val)
	hasTrailingMinus := strings.HasSuffix(val, "-")
	hasLeadingMinus := strings.HasPrefix(val, "-")

	val = currencyOrWS.ReplaceAllString(val, "")
	val = strings.NewReplacer("-", "", "(", "", ")", "").Replace(val)

	comma := strings.LastIndex(val, ",")
	dot := strings.LastIndex(val, ".")

	switch {
	case comma >= 0 && dot >= 0:
		// Both separators present: the later one is the decimal point.
		if comma > dot {
			// EU format: 1.234,56
			val = strings.ReplaceAll(val, ".", "")
			val = strings.ReplaceAll(val, ",", ".")
		} else {
			// US format: 1,234.56
			val = strings.ReplaceAll(val, ",", "")
		}
	case comma >= 0:
		// A single comma with at most two digits after it is a decimal
		// point; anything else is thousands grouping.
		if strings.Count(val, ",") == 1 && len(val)-comma-1 <= 2 {
			val = strings.ReplaceAll(val, ",", ".")
		} else {
			val = strings.ReplaceAll(val, ",", "")
		}
	}

	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0.0
	}
	if hasParens || hasTrailingMinus || hasLeadingMinus {
		return -num
	}
	return num
}
