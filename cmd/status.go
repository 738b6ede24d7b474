package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/utils"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/spf13/cobra"
)

var statusJSONOutput bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "output in JSON format")
}

func resetStatusCommandState() {
	statusJSONOutput = false
}

// statusOutput is the JSON form of the status command.
type statusOutput struct {
	Root           string   `json:"root"`
	PinFile        string   `json:"pin_file"`
	HasPin         bool     `json:"has_pin"`
	ConfigPath     string   `json:"config_path"`
	AuditLogPath   string   `json:"audit_log_path"`
	Entries        int      `json:"entries"`
	TodayWritten   bool     `json:"today_written"`
	PlaintextNotes []string `json:"plaintext_notes"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the journal lives and whether it is locked",
	Long: `Shows the journal location, whether a pin has been created, how many
entries exist and whether today's entry has been written.

Notes that do not look encrypted are listed as a warning: outside a session
every note should be encrypted. Run 'echo-journal seal' to fix that.

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		spinner, cleanup := startSpinner("Checking journal...", verbose)
		defer cleanup()

		result, err := workflows.Status(cmd.Context(), workflows.StatusOptions{Clock: now})
		if err != nil {
			spinner.FinalMSG = ui.Cross() + " Failed to check the journal: " + err.Error()
			return shown(err)
		}

		if statusJSONOutput {
			out := statusOutput{
				Root:           result.Root,
				PinFile:        result.PinFile,
				HasPin:         result.HasPin,
				ConfigPath:     result.ConfigPath,
				AuditLogPath:   result.AuditLogPath,
				Entries:        result.NoteCount,
				TodayWritten:   result.TodayWritten,
				PlaintextNotes: result.PlaintextNotes,
			}
			if out.PlaintextNotes == nil {
				out.PlaintextNotes = []string{}
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal status to JSON: %w", err)
			}
			spinner.FinalMSG = string(data)
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Journal:   %s\n", ui.Path.Sprint(result.Root))
		if result.HasPin {
			fmt.Fprintf(&b, "Pin:       %s %s\n", ui.Check(), ui.Path.Sprint(result.PinFile))
		} else {
			fmt.Fprintf(&b, "Pin:       %s not created, run %s\n", ui.Cross(), ui.Code.Sprint("echo-journal"))
		}
		fmt.Fprintf(&b, "Config:    %s\n", ui.Path.Sprint(result.ConfigPath))
		fmt.Fprintf(&b, "Audit log: %s\n", ui.Path.Sprint(result.AuditLogPath))
		fmt.Fprintf(&b, "Entries:   %d\n", result.NoteCount)
		if result.TodayWritten {
			fmt.Fprintf(&b, "Today:     %s written\n", ui.Lock())
		} else {
			fmt.Fprintf(&b, "Today:     %s not written yet\n", ui.Arrow())
		}

		if len(result.PlaintextNotes) > 0 {
			fmt.Fprintf(&b, "\n%s %d entries are not encrypted:", ui.Warning.Sprint("⚠"), len(result.PlaintextNotes))
			b.WriteString(utils.FormatPaths(result.PlaintextNotes))
			fmt.Fprintf(&b, "%s Run %s to encrypt them", ui.Arrow(), ui.Code.Sprint("echo-journal seal"))
		}

		spinner.FinalMSG = b.String()
		return nil
	},
}
