package cmd

import (
	"errors"
	"fmt"
	"strings"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [glob...]",
	Short: "List journal entries",
	Long: `Lists the days that have an entry, oldest first.

Globs are matched against paths relative to the journal root, so they can
select a day, a month or a year. No pin is needed: only the note contents
are encrypted, not their names.

Examples:
  echo-journal list
  echo-journal list '2026/Oct/*'
  echo-journal list '2025/**' '2026/Jan/*'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		spinner, cleanup := startSpinner("Finding entries...", verbose)
		defer cleanup()

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{Patterns: args})
		if errors.Is(err, eerrors.ErrNoFilesFound) {
			spinner.FinalMSG = ui.Cross() + " No entries match " + ui.Highlight.Sprint(strings.Join(args, " "))
			return nil
		}
		if err != nil {
			spinner.FinalMSG = ui.Cross() + " Failed to list entries: " + err.Error()
			return shown(err)
		}

		Logger.Debugf("Found %d notes under %s", len(result.Notes), result.Root)

		if len(result.Notes) == 0 {
			spinner.FinalMSG = ui.Arrow() + " No entries yet. Run " + ui.Code.Sprint("echo-journal") + " to write today's."
			return nil
		}

		var b strings.Builder
		for _, n := range result.Notes {
			day := "unknown day"
			if !n.Date.IsZero() {
				day = n.Date.Format("Mon 2006-01-02")
			}
			fmt.Fprintf(&b, "%s  %s\n", ui.Date.Sprint(day), ui.Path.Sprint(n.RelPath))
		}
		fmt.Fprintf(&b, "%s %d entries in %s", ui.Check(), len(result.Notes), ui.Path.Sprint(result.Root))
		spinner.FinalMSG = b.String()
		return nil
	},
}
