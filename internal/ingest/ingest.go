// Package ingest reads bank statement exports and produces raw transactions
// (date, detail, amount) for the categorization engine. Each supported
// format is a thin adapter over the same core: the paginated PDF case goes
// through the line assembler, the tabular CSV and OFX cases map fields
// straight through the normalizers.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jgrech/bankflow/internal/common"
	"github.com/jgrech/bankflow/internal/model"
)

// Source converts one statement file into raw transactions. Implementations
// return an empty slice, not an error, for files that are readable but
// contain no recognizable transaction section.
type Source interface {
	Parse(ctx context.Context, path string) ([]model.Transaction, error)
	Format() string
}

// ForFile returns the source for a statement path based on its extension.
func ForFile(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFSource{}, nil
	case ".csv":
		return &CSVSource{}, nil
	case ".ofx", ".qfx":
		return &OFXSource{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Read parses a statement file with the source matching its extension.
func Read(ctx context.Context, path string) ([]model.Transaction, error) {
	src, err := ForFile(path)
	if err != nil {
		return nil, err
	}
	return src.Parse(ctx, path)
}
