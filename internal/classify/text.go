package classify

import (
	"strings"
	"unicode"
)

// MaxFieldLength is the display width the derived columns are truncated to.
const MaxFieldLength = 26

// CapitalizeFirst upper-cases the first rune and lower-cases the rest.
func CapitalizeFirst(text string) string {
	if text == "" {
		return ""
	}
	r := []rune(strings.ToLower(text))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// LimitLength truncates text to MaxFieldLength runes. Truncation is silent:
// this is display formatting, not data integrity.
func LimitLength(text string) string {
	r := []rune(text)
	if len(r) > MaxFieldLength {
		return string(r[:MaxFieldLength])
	}
	return text
}

// IsNumeric reports whether text consists solely of ASCII digits. A
// digits-only counterparty is a bank account or reference number rather
// than a name and is rendered as a number in exports.
func IsNumeric(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
