// Package model defines the core data structures for the bankflow application.
package model

import (
	"sort"
	"time"
)

// Transaction represents a single statement transaction from any source.
// Date and Amount are always present on a retained record; the derived
// fields may be empty strings but are never unset in any other sense.
type Transaction struct {
	Date         time.Time
	Detail       string // raw description text, preserved verbatim for audit
	Type         string // classification label, derived
	Invoice      string // extracted invoice reference, derived
	Counterparty string // extracted counterparty name or numeric id, derived
	Amount       float64
}

// Incoming reports whether the transaction is money in. The sign of Amount
// encodes direction: non-negative is incoming, negative is outgoing.
func (t Transaction) Incoming() bool {
	return t.Amount >= 0
}

// Statement holds the categorized transactions of one statement file:
// the unprocessed source sequence plus the incoming/outgoing partitions,
// each sorted ascending by date.
type Statement struct {
	Source   []Transaction
	Incoming []Transaction
	Outgoing []Transaction
}

// Partition splits transactions by amount sign into incoming and outgoing
// sequences, each stable-sorted ascending by date. Records sharing a date
// keep their relative input order.
func Partition(txns []Transaction) (incoming, outgoing []Transaction) {
	for _, t := range txns {
		if t.Incoming() {
			incoming = append(incoming, t)
		} else {
			outgoing = append(outgoing, t)
		}
	}
	SortByDate(incoming)
	SortByDate(outgoing)
	return incoming, outgoing
}

// SortByDate stable-sorts transactions ascending by date in place.
func SortByDate(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
}
