package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/echo-journal/internal/configs"
	"github.com/PolarWolf314/echo-journal/internal/journal"
	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/utils"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write today's entry",
	Long: `Unlocks the journal and opens today's note.

If nothing has been written today, the entry is read from standard input
until end of file (Ctrl-D) and saved. If today's entry already exists it is
shown read-only. The journal is re-encrypted before echo-journal exits.

This is what running echo-journal with no command does.`,
	Args: cobra.NoArgs,
	RunE: runWrite,
}

func runWrite(cmd *cobra.Command, args []string) (err error) {
	Logger.Infof("Starting write command")

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

	if unlocked.FirstRun {
		printWelcome()
	}

	result, err := workflows.Write(cmd.Context(), workflows.WriteOptions{
		Session: unlocked.Session,
		Compose: composeEntry,
	})
	if err != nil {
		fmt.Println(formatNoteError(err))
		return shown(err)
	}

	note := result.Note
	where := ui.Path.Sprint(displayPath(cfg.Journal.Root, note.Path))
	switch {
	case result.Saved:
		fmt.Println(ui.Check() + " Saved your entry for " + ui.Date.Sprint(formatDay(note.Date)) + " to " + where)
	case result.Locked:
		fmt.Println(ui.Lock() + " Today's entry is read-only " + ui.Muted.Sprint(note.LockReason()))
		if note.Content != "" {
			fmt.Println()
			fmt.Print(ui.EnsureNewline(note.Content))
		}
	default:
		fmt.Println(ui.Arrow() + " Nothing written. Today's entry is still open.")
	}

	return nil
}

// composeEntry reads today's entry from entryInput.
func composeEntry(ctx context.Context, note *journal.Note) (string, error) {
	if entryInput == os.Stdin && utils.IsTerminal() {
		fmt.Println(ui.Arrow() + " Write your entry for " + ui.Date.Sprint(formatDay(note.Date)) +
			". Finish with " + ui.Code.Sprint("Ctrl-D") + ".")
	}
	return utils.ReadEntry(ctx, entryInput)
}
