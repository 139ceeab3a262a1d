// Package export renders a categorized statement to an Excel workbook with
// three views: SOURCE (the unprocessed records), INCOMING and OUTGOING (the
// categorized partitions). Presentation mirrors the statement reports the
// tool replaces: tables, date and currency formats, and data rows tinted by
// calendar month.
package export

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jgrech/bankflow/internal/classify"
	"github.com/jgrech/bankflow/internal/model"
)

// monthColors tints data rows by calendar month. Purely cosmetic.
var monthColors = map[time.Month]string{
	time.January:   "FFCCCC",
	time.February:  "FFE5CC",
	time.March:     "FFFFCC",
	time.April:     "E5FFCC",
	time.May:       "CCFFCC",
	time.June:      "CCFFE5",
	time.July:      "CCFFFF",
	time.August:    "CCE5FF",
	time.September: "CCCCFF",
	time.October:   "E5CCFF",
	time.November:  "FFCCFF",
	time.December:  "FFCCE5",
}

const (
	dateFormat     = "yyyy-mm-dd"
	currencyFormat = "#,##0.00"
)

// Writer renders statements to xlsx workbooks.
type Writer struct {
	file *excelize.File

	// style cache, keyed by fill color ("" for uncolored)
	dateStyles     map[string]int
	textStyles     map[string]int
	currencyStyles map[string]int
}

// NewWriter creates a workbook writer.
func NewWriter() *Writer {
	return &Writer{
		dateStyles:     make(map[string]int),
		textStyles:     make(map[string]int),
		currencyStyles: make(map[string]int),
	}
}

// Write renders the statement to an xlsx file at path.
func (w *Writer) Write(path string, stmt model.Statement) error {
	w.file = excelize.NewFile()
	defer func() { _ = w.file.Close() }()

	// Style ids are scoped to one workbook.
	w.dateStyles = make(map[string]int)
	w.textStyles = make(map[string]int)
	w.currencyStyles = make(map[string]int)

	if err := w.file.SetSheetName("Sheet1", "SOURCE"); err != nil {
		return fmt.Errorf("renaming source sheet: %w", err)
	}
	if err := w.writeSourceSheet(stmt.Source); err != nil {
		return fmt.Errorf("writing SOURCE sheet: %w", err)
	}
	if err := w.writePartitionSheet("INCOMING", "TableStyleMedium9", stmt.Incoming); err != nil {
		return fmt.Errorf("writing INCOMING sheet: %w", err)
	}
	if err := w.writePartitionSheet("OUTGOING", "TableStyleMedium4", stmt.Outgoing); err != nil {
		return fmt.Errorf("writing OUTGOING sheet: %w", err)
	}

	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	slog.Info("workbook written",
		"path", path,
		"source", len(stmt.Source),
		"incoming", len(stmt.Incoming),
		"outgoing", len(stmt.Outgoing))
	return nil
}

func (w *Writer) writeSourceSheet(txns []model.Transaction) error {
	sheet := "SOURCE"
	header := []any{"Date", "Detail", "Amount"}
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, t := range txns {
		row := i + 2
		if err := w.setRow(sheet, row, t, false, ""); err != nil {
			return err
		}
	}

	if len(txns) > 0 {
		rng := fmt.Sprintf("A1:C%d", len(txns)+1)
		if err := w.file.AddTable(sheet, &excelize.Table{
			Range:     rng,
			Name:      "SOURCE_TABLE",
			StyleName: "TableStyleMedium2",
		}); err != nil {
			return err
		}
	}

	if err := w.file.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, "B", "B", 70); err != nil {
		return err
	}
	return w.file.SetColWidth(sheet, "C", "C", 15)
}

func (w *Writer) writePartitionSheet(sheet, tableStyle string, txns []model.Transaction) error {
	if _, err := w.file.NewSheet(sheet); err != nil {
		return err
	}

	header := []any{"Date", "Detail", "Amount", "Type", "Invoice", "Counterparty"}
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, t := range txns {
		row := i + 2
		color := monthColors[t.Date.Month()]
		if err := w.setRow(sheet, row, t, true, color); err != nil {
			return err
		}
	}

	if len(txns) > 0 {
		rng := fmt.Sprintf("A1:F%d", len(txns)+1)
		if err := w.file.AddTable(sheet, &excelize.Table{
			Range:     rng,
			Name:      sheet + "_TABLE",
			StyleName: tableStyle,
		}); err != nil {
			return err
		}
	}

	if err := w.file.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, "B", "B", 50); err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, "C", "C", 15); err != nil {
		return err
	}
	return w.file.SetColWidth(sheet, "D", "F", 26)
}

// setRow writes one transaction. Derived columns are included on the
// partition sheets only; color tints the row by the transaction's month.
func (w *Writer) setRow(sheet string, row int, t model.Transaction, derived bool, color string) error {
	cell := func(col string) string { return col + strconv.Itoa(row) }

	if err := w.file.SetCellValue(sheet, cell("A"), t.Date); err != nil {
		return err
	}
	if err := w.file.SetCellValue(sheet, cell("B"), t.Detail); err != nil {
		return err
	}
	if err := w.file.SetCellValue(sheet, cell("C"), t.Amount); err != nil {
		return err
	}

	if derived {
		if err := w.file.SetCellValue(sheet, cell("D"), t.Type); err != nil {
			return err
		}
		if err := w.file.SetCellValue(sheet, cell("E"), t.Invoice); err != nil {
			return err
		}
		// A digits-only counterparty is an account or reference number;
		// write it as a number, not text.
		var counterparty any = t.Counterparty
		if classify.IsNumeric(t.Counterparty) {
			if n, err := strconv.ParseInt(t.Counterparty, 10, 64); err == nil {
				counterparty = n
			}
		}
		if err := w.file.SetCellValue(sheet, cell("F"), counterparty); err != nil {
			return err
		}
	}

	dateStyle, err := w.style(w.dateStyles, color, dateFormat)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, cell("A"), cell("A"), dateStyle); err != nil {
		return err
	}

	currencyStyle, err := w.style(w.currencyStyles, color, currencyFormat)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, cell("C"), cell("C"), currencyStyle); err != nil {
		return err
	}

	if color != "" {
		textStyle, err := w.style(w.textStyles, color, "")
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet, cell("B"), cell("B"), textStyle); err != nil {
			return err
		}
		if derived {
			if err := w.file.SetCellStyle(sheet, cell("D"), cell("F"), textStyle); err != nil {
				return err
			}
		}
	}

	return nil
}

// style returns a cached style id for the color/format combination.
func (w *Writer) style(cache map[string]int, color, numFmt string) (int, error) {
	key := color + "|" + numFmt
	if id, ok := cache[key]; ok {
		return id, nil
	}

	s := &excelize.Style{}
	if numFmt != "" {
		fmtCopy := numFmt
		s.CustomNumFmt = &fmtCopy
	}
	if color != "" {
		s.Fill = excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}

	id, err := w.file.NewStyle(s)
	if err != nil {
		return 0, err
	}
	cache[key] = id
	return id, nil
}
