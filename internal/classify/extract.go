package classify

import (
	"regexp"
	"strings"
)

var invoicePattern = regexp.MustCompile(`(?i)(invoice|inv|fattura|fatt\s*nr?)\s*([0-9]+)`)

// Invoice extracts an invoice reference from a description. It recognizes
// the tokens invoice/inv/fattura/fatt nr followed by digits and returns
// "invoice <digits>", or the empty string when no reference is present.
func Invoice(detail string) string {
	if detail == "" {
		return ""
	}
	if m := invoicePattern.FindStringSubmatch(detail); m != nil {
		return "invoice " + m[2]
	}
	return ""
}

// High-confidence structural patterns tied to known phrasings. A match here
// short-circuits the cleanup pipeline.
var (
	sentMoneyTo       = regexp.MustCompile(`(?i)sent money to\s+(.+?)(?:\s+transaction:|$)`)
	receivedMoneyFrom = regexp.MustCompile(`(?i)received money from\s+(.+?)(?:\s+with reference|transaction:|$)`)
	issuedBy          = regexp.MustCompile(`(?i)issued by\s+(.+?)(?:\s+card ending|transaction:|$)`)

	administrationMarker = regexp.MustCompile(`(?i)administratio`)
	administrationRef    = regexp.MustCompile(`(?i)ADMINISTRATIO\s+([0-9]+)`)
)

// boilerplate phrases stripped from the description before the looser
// heuristics run. The list is ordered; earlier patterns may consume text
// that later ones would otherwise match.
var boilerplate = []*regexp.Regexp{
	regexp.MustCompile(`(?i)24x7\s*pay\s*third\s*parties`),
	regexp.MustCompile(`(?i)24x7\s*pay`),
	regexp.MustCompile(`(?i)third\s*parties`),
	regexp.MustCompile(`(?i)payment order outwards same day`),
	regexp.MustCompile(`(?i)payment order outwards`),
	regexp.MustCompile(`(?i)account to account transfer express deposits`),
	regexp.MustCompile(`(?i)account to account transfer`),
	regexp.MustCompile(`(?i)transfer between own accounts`),
	regexp.MustCompile(`(?i)sct instant payments inwards`),
	regexp.MustCompile(`(?i)sct inwards`),
	regexp.MustCompile(`(?i)sct outwards`),
	regexp.MustCompile(`(?i)standing instruction charge`),
	regexp.MustCompile(`(?i)standing instruction`),
	regexp.MustCompile(`(?i)administration fee`),
	regexp.MustCompile(`(?i)unprocessed standing instruction charge`),
	regexp.MustCompile(`(?i)sdd outwards fee`),
	regexp.MustCompile(`(?i)atm cash deposit`),
	regexp.MustCompile(`(?i)cheque deposit.*$`),
	regexp.MustCompile(`(?i)cheque returned fee.*$`),
	regexp.MustCompile(`(?i)cheque book order fee.*$`),
	regexp.MustCompile(`(?i)cheque\s+\d+.*`),
	regexp.MustCompile(`(?i)relation:\s*[^,]+`),
	regexp.MustCompile(`(?i)reason:\s*[^,]+`),
	regexp.MustCompile(`(?i)value date\s*-\s*[0-9/]+`),
	regexp.MustCompile(`(?i)ref\s*:\s*[-0-9A-Za-z.]+.*$`),
	regexp.MustCompile(`(?i)\s+eur\s+[0-9.,]+`),
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	markerSplit   = regexp.MustCompile(`(?i)ref\s*:|value date|relation:`)

	companySuffix  = regexp.MustCompile(`(?i)\b([A-Z][A-Za-z &.'-]*\s(?:ltd|limited|plc|co|company))\b`)
	eurAmount      = regexp.MustCompile(`(?i)\s+eur\s+`)
	personTitle    = regexp.MustCompile(`\b(Mr|Ms|Mrs|Dr)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)
	upperToken     = regexp.MustCompile(`\b([A-Z][A-Z &.'-]{2,})\b`)
	capitalizedRun = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,4})\b`)
)

// Counterparty extracts the other party of a transaction from its
// description. It is an ordered decision list: high-confidence structural
// patterns first, a tax-administration reference special case, then a
// cleanup pipeline followed by progressively looser heuristics terminating
// in "first five words". Total over strings; empty in yields empty out.
func Counterparty(detail string) string {
	if detail == "" {
		return ""
	}

	if m := sentMoneyTo.FindStringSubmatch(detail); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := receivedMoneyFrom.FindStringSubmatch(detail); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := issuedBy.FindStringSubmatch(detail); m != nil {
		return strings.TrimSpace(m[1])
	}

	// Tax administration references carry a payer number, not a name.
	if administrationMarker.MatchString(detail) {
		if m := administrationRef.FindStringSubmatch(detail); m != nil {
			return m[1]
		}
	}

	cleaned := detail
	for _, p := range boilerplate {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
	cleaned = strings.TrimSpace(markerSplit.Split(cleaned, 2)[0])

	if m := companySuffix.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}

	if parts := eurAmount.Split(cleaned, 2); len(parts) > 0 {
		head := strings.TrimSpace(parts[0])
		if len(head) >= 3 {
			cleaned = head
		}
	}

	if m := personTitle.FindString(cleaned); m != "" {
		return m
	}
	if m := upperToken.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}
	if m := capitalizedRun.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}

	words := strings.Fields(cleaned)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
