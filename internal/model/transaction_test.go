package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) time.Time {
	return time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
}

func TestPartition(t *testing.T) {
	txns := []Transaction{
		{Date: date(3), Detail: "salary", Amount: 1500.00},
		{Date: date(1), Detail: "rent", Amount: -800.00},
		{Date: date(2), Detail: "refund", Amount: 25.50},
		{Date: date(1), Detail: "zero amount row", Amount: 0},
	}

	incoming, outgoing := Partition(txns)

	require.Len(t, incoming, 3)
	require.Len(t, outgoing, 1)

	// Non-negative amounts are incoming, including zero.
	assert.Equal(t, "zero amount row", incoming[0].Detail)
	assert.Equal(t, "refund", incoming[1].Detail)
	assert.Equal(t, "salary", incoming[2].Detail)
	assert.Equal(t, "rent", outgoing[0].Detail)
}

func TestPartitionEmpty(t *testing.T) {
	incoming, outgoing := Partition(nil)
	assert.Empty(t, incoming)
	assert.Empty(t, outgoing)
}

func TestSortByDateStable(t *testing.T) {
	txns := []Transaction{
		{Date: date(2), Detail: "first on day 2", Amount: 1},
		{Date: date(1), Detail: "day 1", Amount: 2},
		{Date: date(2), Detail: "second on day 2", Amount: 3},
	}

	SortByDate(txns)

	require.Len(t, txns, 3)
	assert.Equal(t, "day 1", txns[0].Detail)
	// Equal dates retain their relative input order.
	assert.Equal(t, "first on day 2", txns[1].Detail)
	assert.Equal(t, "second on day 2", txns[2].Detail)
}

func TestPartitionDeterministic(t *testing.T) {
	txns := []Transaction{
		{Date: date(2), Detail: "a", Amount: 10},
		{Date: date(1), Detail: "b", Amount: -10},
		{Date: date(1), Detail: "c", Amount: 5},
	}

	in1, out1 := Partition(txns)
	in2, out2 := Partition(txns)

	assert.Equal(t, in1, in2)
	assert.Equal(t, out1, out2)
}
