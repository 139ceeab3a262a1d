package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jgrech/bankflow/internal/assemble"
	"github.com/jgrech/bankflow/internal/model"
)

// PDFSource reads paginated statement PDFs. The text extracted from each
// page arrives as physical lines that may split one transaction across
// several of them; the assemble package reconstructs the logical records.
type PDFSource struct{}

// Format returns the source name.
func (s *PDFSource) Format() string { return "pdf" }

// Parse extracts the text lines of every page and assembles them.
func (s *PDFSource) Parse(ctx context.Context, path string) ([]model.Transaction, error) {
	lines, err := extractLines(path)
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}

	txns := assemble.Assemble(lines)
	slog.Debug("parsed PDF statement",
		"path", path,
		"lines", len(lines),
		"transactions", len(txns))
	return txns, nil
}

// extractLines pulls row-ordered text out of the PDF. The library panics on
// some malformed files, so the recover converts that into an error.
func extractLines(path string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library failure: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}
