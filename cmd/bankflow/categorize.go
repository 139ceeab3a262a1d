package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jgrech/bankflow/internal/common"
	"github.com/jgrech/bankflow/internal/engine"
	"github.com/jgrech/bankflow/internal/export"
	"github.com/jgrech/bankflow/internal/ingest"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize [files...]",
		Short: "Categorize bank statement files",
		Long: `Categorize one or more bank statement exports (PDF, CSV, OFX/QFX).

Each statement produces a workbook named categorized_<name>.xlsx beside the
input file, with SOURCE, INCOMING and OUTGOING sheets.

Examples:
  # Single statement
  bankflow categorize ~/Downloads/september.pdf

  # A whole directory of exports
  bankflow categorize ~/Downloads/statements/*.csv ~/Downloads/*.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCategorize,
	}

	cmd.Flags().StringP("output", "o", "", "output file (single input only; default: categorized_<name>.xlsx beside input)")
	cmd.Flags().BoolP("dry-run", "d", false, "parse and categorize without writing workbooks")

	return cmd
}

func runCategorize(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files found")
	}
	if output != "" && len(files) > 1 {
		return fmt.Errorf("--output requires a single input file, got %d", len(files))
	}

	common.LogInfo("Categorizing statements...", common.Fields{
		"file_count": len(files),
		"dry_run":    dryRun,
	})

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.Default(int64(len(files)), "categorizing")
	}

	var failed int
	for _, file := range files {
		if err := processStatement(cmd.Context(), file, output, dryRun); err != nil {
			failed++
			common.LogError(err, "statement failed", common.Fields{"file": file})
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d statements failed", failed, len(files))
	}
	return nil
}

// processStatement runs the full pipeline for one file: ingest, categorize,
// export. Zero extracted records is the single whole-statement failure.
func processStatement(ctx context.Context, path, output string, dryRun bool) error {
	txns, err := ingest.Read(ctx, path)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		return fmt.Errorf("%s: %w", path, common.ErrNoTransactions)
	}

	stmt := engine.Categorize(txns)

	slog.Info("statement categorized",
		"file", filepath.Base(path),
		"transactions", len(stmt.Source),
		"incoming", len(stmt.Incoming),
		"outgoing", len(stmt.Outgoing))

	if dryRun {
		return nil
	}

	if output == "" {
		output = outputPath(path)
	}
	return export.NewWriter().Write(output, stmt)
}

// expandArgs resolves glob patterns and plain paths into a file list.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	return files, nil
}

// outputPath derives categorized_<stem>.xlsx beside the input file.
func outputPath(input string) string {
	dir := filepath.Dir(input)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, "categorized_"+stem+".xlsx")
}
