package cmd

import (
	"fmt"

	"github.com/PolarWolf314/echo-journal/internal/configs"
	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <date|path>",
	Short: "Read a past entry",
	Long: `Unlocks the journal and shows one entry, read-only.

The entry is given as a date (YYYY-MM-DD) or as a note path, either absolute
or relative to the journal root.

Examples:
  echo-journal read 2026-10-01
  echo-journal read 2026/Oct/01/journal.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) (err error) {
	Logger.Infof("Starting read command")

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Println(ui.Cross() + " Failed to load config: " + err.Error())
		return shown(err)
	}

	unlocked, err := unlockJournal(cmd.Context(), workflows.UnlockOptions{Config: cfg})
	if err != nil {
		fmt.Println(formatUnlockError(err))
		return shown(err)
	}
	defer func() {
		if cerr := closeJournal(unlocked.Session); err == nil {
			err = cerr
		}
	}()

	result, err := workflows.Read(cmd.Context(), workflows.ReadOptions{
		Session: unlocked.Session,
		Target:  args[0],
	})
	if err != nil {
		fmt.Println(formatNoteError(err))
		return shown(err)
	}

	fmt.Println(ui.Date.Sprint(formatDay(result.Note.Date)) + " " + ui.Lock() + " " + ui.Muted.Sprint(result.RelPath))
	fmt.Println()
	if result.Note.Content == "" {
		fmt.Println(ui.Muted.Sprint("empty"))
	} else {
		fmt.Print(ui.EnsureNewline(result.Note.Content))
	}

	return nil
}
