// Package assemble reconstructs logical transaction records from the raw
// text lines of a paginated statement. A single transaction is frequently
// split across several physical lines by the page layout: the date and the
// start of the description on one line, the rest of the description and the
// amounts on the next. The assembler is a small state machine that groups
// those lines back together.
package assemble

import (
	"regexp"
	"strings"
	"time"

	"github.com/jgrech/bankflow/internal/model"
	"github.com/jgrech/bankflow/internal/normalize"
)

var (
	headerLine   = regexp.MustCompile(`(?i)Description\s+Incoming\s+Outgoing\s+Amount`)
	terminalLine = regexp.MustCompile(`(?i)(Opening Balance|Closing Balance|Total|Page \d+)`)

	// A transaction line starts with a fully spelled date, e.g. "30 September 2025".
	dateLead = regexp.MustCompile(`^(\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})\s+(.+)`)

	// Decimal-formatted amounts anywhere in the line. The raw token is kept:
	// its leading minus decides outgoing vs incoming before normalization.
	amountToken = regexp.MustCompile(`-?[\d,]+\.\d{2}`)
)

// pending is the single-owner accumulator for one in-progress record. It is
// finalized into a model.Transaction, or discarded if its description is
// still empty, when a new date-leading line appears or the input ends.
type pending struct {
	date        time.Time
	description strings.Builder
	incoming    float64
	outgoing    float64
	balance     float64
	hasIncoming bool
	hasOutgoing bool
}

// Assemble scans statement lines and returns the reconstructed transactions
// in input order. Lines before the column-header line are ignored; terminal
// markers (opening/closing balance, totals, page breaks) close the current
// block, and a later header re-opens it for multi-page statements.
func Assemble(lines []string) []model.Transaction {
	var (
		txns    []model.Transaction
		current *pending
		inBlock bool
	)

	finalize := func() {
		if current == nil {
			return
		}
		if t, ok := current.transaction(); ok {
			txns = append(txns, t)
		}
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if headerLine.MatchString(line) {
			inBlock = true
			continue
		}

		if inBlock && terminalLine.MatchString(line) {
			finalize()
			inBlock = false
			continue
		}

		if !inBlock {
			continue
		}

		if m := dateLead.FindStringSubmatch(line); m != nil {
			finalize()

			date, ok := normalize.ParseDate(m[1])
			if !ok {
				continue
			}
			current = &pending{date: date}
			current.consume(m[2])
			continue
		}

		if current != nil {
			current.consume(line)
		}
	}

	finalize()
	return txns
}

// consume extracts the amounts from a line fragment and appends what
// remains to the description. The last amount on a line is the running
// balance; if a second-to-last exists, an explicit leading minus on its raw
// token records it as outgoing, otherwise as incoming. Amounts found on a
// later line overwrite earlier ones.
func (p *pending) consume(fragment string) {
	amounts := amountToken.FindAllString(fragment, -1)

	if len(amounts) > 0 {
		p.balance = normalize.ParseNumber(amounts[len(amounts)-1])

		if len(amounts) >= 2 {
			raw := amounts[len(amounts)-2]
			value := abs(normalize.ParseNumber(raw))
			if strings.HasPrefix(raw, "-") {
				p.outgoing = value
				p.hasOutgoing = true
			} else {
				p.incoming = value
				p.hasIncoming = true
			}
		}
	}

	text := fragment
	for _, amt := range amounts {
		text = strings.Replace(text, amt, "", 1)
	}
	text = strings.TrimSpace(text)
	if text != "" {
		if p.description.Len() > 0 {
			p.description.WriteByte(' ')
		}
		p.description.WriteString(text)
	}
}

// transaction finalizes the accumulator. Records lacking a description are
// dropped: they are layout fragments, not transactions.
func (p *pending) transaction() (model.Transaction, bool) {
	detail := strings.TrimSpace(p.description.String())
	if p.date.IsZero() || detail == "" {
		return model.Transaction{}, false
	}

	var amount float64
	switch {
	case p.hasIncoming && p.incoming > 0:
		amount = p.incoming
	case p.hasOutgoing && p.outgoing > 0:
		amount = -p.outgoing
	}

	return model.Transaction{
		Date:   p.date,
		Detail: detail,
		Amount: amount,
	}, true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
