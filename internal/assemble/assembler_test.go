package assemble

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSingleRecord(t *testing.T) {
	lines := []string{
		"Statement of Account",
		"Description Incoming Outgoing Amount",
		"30 September 2025 Payment to Shop -50.00 1,200.00",
		"Closing Balance 1,200.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.Equal(t, "Payment to Shop", txns[0].Detail)
	// Raw token -50.00 carries an explicit minus: outgoing.
	assert.InDelta(t, -50.00, txns[0].Amount, 0.0001)
}

func TestAssembleNoMinusMeansIncoming(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"30 September 2025 Payment to Shop 50.00 1,200.00",
		"continued note",
		"Closing Balance 1,200.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	assert.Equal(t, "Payment to Shop continued note", txns[0].Detail)
	// The non-balance figure carries no explicit minus, so it is recorded
	// as incoming; the balance figure never enters the final amount.
	assert.InDelta(t, 50.00, txns[0].Amount, 0.0001)
}

func TestAssembleContinuationCarriesAmounts(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"2 September 2025 Sent money to John Smith",
		"Transaction: 9001 -75.50 924.50",
		"Closing Balance 924.50",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	assert.Equal(t, "Sent money to John Smith Transaction: 9001", txns[0].Detail)
	assert.InDelta(t, -75.50, txns[0].Amount, 0.0001)
}

func TestAssembleLaterAmountsWin(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"2 September 2025 Refund 10.00 1,000.00",
		"corrected 25.00 1,015.00",
		"Closing Balance 1,015.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	assert.Equal(t, "Refund corrected", txns[0].Detail)
	assert.InDelta(t, 25.00, txns[0].Amount, 0.0001)
}

func TestAssembleMultipleRecords(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"1 September 2025 Salary payment 1,500.00 2,500.00",
		"2 September 2025 Card transaction COFFEE -4.50 2,495.50",
		"Closing Balance 2,495.50",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 2)
	assert.InDelta(t, 1500.00, txns[0].Amount, 0.0001)
	assert.InDelta(t, -4.50, txns[1].Amount, 0.0001)
}

func TestAssembleIgnoresLinesBeforeHeader(t *testing.T) {
	lines := []string{
		"1 September 2025 Not a transaction 10.00 20.00",
		"Description Incoming Outgoing Amount",
		"2 September 2025 Real one -5.00 15.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	assert.Equal(t, "Real one", txns[0].Detail)
}

func TestAssembleResumesAfterPageBreak(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"1 September 2025 First -5.00 95.00",
		"Page 1",
		"some page footer",
		"Description Incoming Outgoing Amount",
		"2 September 2025 Second 20.00 115.00",
		"Closing Balance 115.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 2)
	assert.Equal(t, "First", txns[0].Detail)
	assert.Equal(t, "Second", txns[1].Detail)
}

func TestAssembleEndOfInputFinalizes(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"3 September 2025 Trailing record -1.00 99.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	assert.Equal(t, "Trailing record", txns[0].Detail)
}

func TestAssembleDropsEmptyDescriptions(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		// A date-leading line whose remainder is only amounts: after the
		// numbers are stripped there is no description left.
		"3 September 2025 10.00 110.00",
		"Closing Balance 110.00",
	}

	txns := Assemble(lines)
	assert.Empty(t, txns)
}

func TestAssembleNoHeaderYieldsNothing(t *testing.T) {
	lines := []string{
		"just some text",
		"1 September 2025 Looks like a transaction -5.00 95.00",
	}

	assert.Empty(t, Assemble(lines))
}

func TestAssembleSingleAmountIsBalanceOnly(t *testing.T) {
	lines := []string{
		"Description Incoming Outgoing Amount",
		"4 September 2025 Informational row 1,000.00",
	}

	txns := Assemble(lines)

	require.Len(t, txns, 1)
	// Only one number on the line: it is the balance, so no incoming or
	// outgoing amount was discovered and the signed amount degrades to 0.
	assert.InDelta(t, 0.0, txns[0].Amount, 0.0001)
}
