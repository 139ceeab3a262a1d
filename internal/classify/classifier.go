// Package classify assigns a transaction-type label to statement description
// text and extracts entities (invoice reference, counterparty name) from it.
//
// Classification is a deterministic ordered cascade of regex rules evaluated
// first-match-wins over the lower-cased description. Rule order is a
// tie-break policy: specific multi-word phrases are tested before broader
// single-word ones within a theme, and themed rules before generic fallbacks
// like bare "deposit". Reordering rules silently shifts results for
// descriptions matching more than one predicate.
package classify

import (
	"regexp"
	"strings"
)

// typeRule pairs one predicate with the label it assigns.
type typeRule struct {
	pattern *regexp.Regexp
	label   string
}

func rule(pattern, label string) typeRule {
	return typeRule{pattern: regexp.MustCompile(pattern), label: label}
}

// typeRules is the ordered cascade. Groups are thematic; within each group
// the more specific phrasing comes first.
var typeRules = []typeRule{
	// Card transactions
	rule(`card transaction`, "card payment"),
	rule(`card ending in`, "card transaction"),

	// Transfers
	rule(`sent money to`, "outgoing transfer"),
	rule(`received money from`, "incoming transfer"),
	rule(`account to account`, "account transfer"),
	rule(`transfer between own accounts`, "internal transfer"),
	rule(`sct inwards`, "incoming sct transfer"),
	rule(`sct outwards`, "outgoing sct transfer"),
	rule(`instant payments inwards`, "instant payment in"),
	rule(`instant payment`, "instant payment"),

	// Cheques
	rule(`cheque.*deposit`, "cheque deposit"),
	rule(`cheque.*returned`, "cheque returned fee"),
	rule(`cheques returned`, "cheque returned"),
	rule(`cheque`, "cheque payment"),

	// Fees & charges
	rule(`wise charges`, "transfer fee"),
	rule(`fee`, "bank fee"),
	rule(`charge`, "bank charge"),
	rule(`administration fee`, "administration fee"),
	rule(`standing instruction charge`, "standing instruction charge"),
	rule(`standing instruction`, "standing instruction"),

	// Salaries & employment
	rule(`salary`, "salary"),
	rule(`employment`, "employment payment"),
	rule(`stipendio|stipend`, "stipend/salary"),

	// Loans & repayments
	rule(`repayment.*principal`, "loan principal repayment"),
	rule(`repayment.*interest`, "loan interest repayment"),
	rule(`loan`, "loan"),

	// Taxes & government
	rule(`tax`, "tax payment"),
	rule(`vat`, "vat payment"),
	rule(`customs`, "customs payment"),
	rule(`government|gov`, "government payment"),

	// ATM deposits
	rule(`atm.*cash.*deposit`, "atm cash deposit"),

	// 24x7 payments
	rule(`24x7 pay`, "third party payment"),
	rule(`24x7 bill`, "bill payment"),
	rule(`24x7 mobile pay`, "mobile payment"),

	// Direct debits
	rule(`sdd outwards`, "direct debit out"),

	// Insurance
	rule(`mapfre|msv life|insurance`, "insurance payment"),

	// Retail / food / hospitality
	rule(`hotel`, "hotel payment"),
	rule(`catering`, "catering payment"),
	rule(`butcher|food|supermarket|restaurant|eat`, "food & retail"),
	rule(`retail`, "retail payment"),

	// Utilities
	rule(`electricity|water|gas|utility`, "utility payment"),

	// Misc
	rule(`cashback|balance_cashback`, "cashback"),
	rule(`refund`, "refund"),
	rule(`deposit`, "deposit"),
	rule(`withdrawal`, "withdrawal"),
}

// Type returns the transaction-type label for a description. The label is
// drawn from the fixed rule vocabulary; no rule matching yields "other".
func Type(detail string) string {
	if detail == "" {
		return "other"
	}

	lower := strings.ToLower(detail)
	for _, r := range typeRules {
		if r.pattern.MatchString(lower) {
			return r.label
		}
	}
	return "other"
}
