// Package engine turns the raw transactions of one statement into a
// categorized Statement: derived fields populated, records partitioned into
// incoming and outgoing, each partition in chronological order.
package engine

import (
	"log/slog"

	"github.com/jgrech/bankflow/internal/classify"
	"github.com/jgrech/bankflow/internal/model"
)

// Categorize builds a Statement from raw transactions. The input order is
// preserved in Source; the partitions are stable-sorted by date, so records
// sharing a date keep their relative input order. Empty input yields empty
// partitions, not an error: zero records is reported by the caller, once,
// at the whole-statement level.
func Categorize(txns []model.Transaction) model.Statement {
	enriched := make([]model.Transaction, len(txns))
	for i, t := range txns {
		t.Type = shape(classify.Type(t.Detail))
		t.Invoice = shape(classify.Invoice(t.Detail))
		t.Counterparty = shape(classify.Counterparty(t.Detail))
		enriched[i] = t
	}

	incoming, outgoing := model.Partition(enriched)

	slog.Debug("categorized statement",
		"total", len(enriched),
		"incoming", len(incoming),
		"outgoing", len(outgoing))

	return model.Statement{
		Source:   txns,
		Incoming: incoming,
		Outgoing: outgoing,
	}
}

// shape applies the display policy shared by all derived fields: first
// letter upper-cased, rest lowered, truncated to the display width.
func shape(s string) string {
	return classify.LimitLength(classify.CapitalizeFirst(s))
}
