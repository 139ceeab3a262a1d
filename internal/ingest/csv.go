package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jgrech/bankflow/internal/model"
	"github.com/jgrech/bankflow/internal/normalize"
)

// CSVSource reads tabular statement exports. The transaction table sits
// below a "Transaction History" marker line; the row after the marker is
// the column header. Columns map straight through the normalizers, so this
// source bypasses the line assembler entirely.
type CSVSource struct{}

// transactionHistoryMarker precedes the column header in the export.
const transactionHistoryMarker = "Transaction History"

// Format returns the source name.
func (s *CSVSource) Format() string { return "csv" }

// Parse reads the statement and maps its rows. Rows whose date cannot be
// resolved are dropped; a file with no marker or no recognizable columns
// yields an empty slice, reported by the caller as "no transactions found".
func (s *CSVSource) Parse(ctx context.Context, path string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading CSV %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	start := -1
	for i, line := range lines {
		if strings.Contains(line, transactionHistoryMarker) {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(lines) {
		slog.Warn("transaction history marker not found", "path", path)
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	dateCol, detailCol, amountCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "Date":
			dateCol = i
		case "Detail":
			detailCol = i
		case "Amount":
			amountCol = i
		}
	}
	if dateCol < 0 || detailCol < 0 || amountCol < 0 {
		slog.Warn("expected columns not found",
			"path", path,
			"header", records[0])
		return nil, nil
	}

	var txns []model.Transaction
	for _, rec := range records[1:] {
		if len(rec) <= dateCol || len(rec) <= detailCol || len(rec) <= amountCol {
			continue
		}
		date, ok := normalize.ParseDate(rec[dateCol])
		if !ok {
			continue
		}
		txns = append(txns, model.Transaction{
			Date:   date,
			Detail: strings.TrimSpace(rec[detailCol]),
			Amount: normalize.ParseNumber(rec[amountCol]),
		})
	}

	slog.Debug("parsed CSV statement", "path", path, "transactions", len(txns))
	return txns, nil
}
