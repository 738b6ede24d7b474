package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logSince     string
	logUntil     string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logSince = ""
	logUntil = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of journal operations.

Shows when the journal was unlocked, encrypted and written to, and any pin
lockouts. Entry contents are never logged.

Examples:
  echo-journal log                              # View full log
  echo-journal log -n 10                        # Last 10 entries
  echo-journal log --reverse                    # Most recent first
  echo-journal log --operation unlock,lockout   # Filter by operation
  echo-journal log --since 2026-01-01           # Filter by date
  echo-journal log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	opts := workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		Since:      logSince,
		Until:      logUntil,
	}

	result, err := workflows.Log(cmd.Context(), opts)
	if err != nil {
		spinner.FinalMSG = formatLogError(err)
		if isLogUnexpectedError(err) {
			return shown(err)
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			spinner.FinalMSG = "No audit log entries found."
		} else {
			spinner.FinalMSG = "No audit log entries found matching the filters."
		}
		return nil
	}

	if logJSON {
		data, err := json.MarshalIndent(result.Entries, "", "  ")
		if err != nil {
			spinner.FinalMSG = ""
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		spinner.FinalMSG = string(data)
		return nil
	}

	spinner.FinalMSG = formatLogEntries(result.Entries)
	return nil
}

// formatLogError formats a log error for display to the user.
func formatLogError(err error) string {
	switch {
	case errors.Is(err, eerrors.ErrNoFilesFound):
		return ui.Info.Sprint("ℹ") + " No audit log found. Operations will be logged after you first unlock the journal."

	case errors.Is(err, eerrors.ErrInvalidDateFormat):
		return ui.Cross() + " " + err.Error()

	default:
		return ui.Cross() + " Failed to read audit log: " + err.Error()
	}
}

// isLogUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isLogUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, eerrors.ErrNoFilesFound):
		return false
	default:
		return true
	}
}

func formatLogEntries(entries []audit.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		details := workflows.FormatDetails(e)
		fmt.Fprintf(&b, "%-19s  %-12s  %-10s  %s\n", datetime, e.User, e.Operation, details)
	}
	return b.String()
}
