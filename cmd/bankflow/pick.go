package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgrech/bankflow/internal/common"
	"github.com/jgrech/bankflow/internal/tui"
)

func pickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [directory]",
		Short: "Interactively select and categorize a statement",
		Long: `Open an interactive file picker to choose a statement, then run the
categorization pipeline on the selection. Starts in the given directory,
or the current one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPick,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "parse and categorize without writing a workbook")

	return cmd
}

func runPick(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return common.NewUserError(fmt.Sprintf("not a directory: %s", dir), err)
	}

	path, err := tui.PickStatement(dir)
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			slog.Info("selection canceled")
			return nil
		}
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return processStatement(cmd.Context(), path, "", dryRun)
}
