package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
	"github.com/PolarWolf314/echo-journal/internal/session"
	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/utils"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// promptPin is the workflows.PinPrompter used by every command.
func promptPin(ctx context.Context, prompt string) (string, error) {
	return readPin(ctx, prompt)
}

// printRetry tells the user their pin was rejected.
func printRetry(err error, attemptsLeft int) {
	switch {
	case errors.Is(err, eerrors.ErrInvalidPinFormat) && attemptsLeft < 0:
		fmt.Println(ui.Cross() + " Please enter a valid 4-digit pin.")
	case attemptsLeft == 1:
		fmt.Println(ui.Cross() + " Incorrect pin. " + ui.Warning.Sprint("1 attempt left."))
	default:
		fmt.Printf("%s Incorrect pin. %d attempts left.\n", ui.Cross(), attemptsLeft)
	}
}

// formatUnlockError formats an authentication error for display to the user.
func formatUnlockError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return ui.Cross() + " Interrupted. Your journal stays locked."
	case errors.Is(err, eerrors.ErrTooManyAttempts):
		return ui.Cross() + " Too many incorrect pin attempts. Your journal stays locked."
	case errors.Is(err, eerrors.ErrPinNotFound):
		return ui.Cross() + " No pin has been created yet\n" +
			ui.Arrow() + " Run " + ui.Code.Sprint("echo-journal") + " to create one"
	default:
		return ui.Cross() + " Failed to unlock the journal: " + err.Error()
	}
}

// formatNoteError formats a note lifecycle error for display to the user.
func formatNoteError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return ui.Cross() + " Interrupted. Nothing was saved."
	case errors.Is(err, eerrors.ErrInvalidDateFormat):
		return ui.Cross() + " " + err.Error()
	case errors.Is(err, eerrors.ErrNoteNotFound):
		return ui.Cross() + " There is no entry for that day"
	case errors.Is(err, eerrors.ErrNotANote):
		return ui.Cross() + " " + err.Error() + "\n" +
			ui.Arrow() + " Notes live under your journal as " + ui.Path.Sprint("YYYY/Mon/DD/journal.txt")
	case errors.Is(err, eerrors.ErrNoteReadOnly):
		return ui.Lock() + " " + err.Error()
	default:
		return ui.Cross() + " " + err.Error()
	}
}

// formatSealSummary reports files that could not be re-encrypted. Those are
// still plaintext on disk, so the user must always see them.
func formatSealSummary(root string, summary secrets.Summary) string {
	failed := summary.Failed()
	if len(failed) == 0 {
		return ui.Check() + " Journal encrypted"
	}

	paths := make([]string, len(failed))
	for i, r := range failed {
		paths[i] = r.Path
	}
	return ui.Warning.Sprint("⚠") + fmt.Sprintf(" %d file(s) could not be encrypted:", len(failed)) +
		utils.FormatPaths(utils.RelativePaths(root, paths)) +
		ui.Arrow() + " Run " + ui.Code.Sprint("echo-journal seal") + " to try again"
}

// printWelcome shows the banner and the rules of the journal on first run.
func printWelcome() {
	fmt.Println()
	banner := figure.NewColorFigure("Echo", "standard", "green", true)
	banner.Print()
	fmt.Println()

	fmt.Println(ui.Success.Sprint("Your journal is set up.") + " Here is what you need to know:")
	fmt.Println()
	fmt.Println(ui.Arrow() + " You get one entry per day. Once saved, it can't be edited.")
	fmt.Println(ui.Arrow() + " Your 4-digit pin unlocks the journal. It cannot be recovered.")
	fmt.Println(ui.Arrow() + " Notes are encrypted whenever echo-journal is not running.")
	fmt.Println(ui.Arrow() + " Reading a past entry with " + ui.Code.Sprint("echo-journal read") +
		" discards any unsaved entry and makes the session read-only.")
	fmt.Println()
}

// unlockJournal runs the unlock workflow with terminal prompts.
func unlockJournal(ctx context.Context, opts workflows.UnlockOptions) (*workflows.UnlockResult, error) {
	opts.Prompt = promptPin
	opts.OnRetry = printRetry
	opts.Clock = now
	opts.Logger = Logger
	return workflows.Unlock(ctx, opts)
}

// closeJournal re-encrypts the journal at the end of a session. It returns an
// error when any note was left in plaintext. It runs even after an interrupt,
// so it never uses the command's context.
func closeJournal(sess *session.Session) error {
	spinner, cleanup := startSpinner("Encrypting journal...", verbose)
	defer cleanup()

	result, err := workflows.Close(context.Background(), workflows.CloseOptions{Session: sess})
	if err != nil {
		spinner.FinalMSG = ui.Cross() + " Failed to encrypt the journal: " + err.Error()
		return shown(err)
	}

	spinner.FinalMSG = formatSealSummary(sess.Root(), result.Summary)
	if n := result.Summary.Count(secrets.OutcomeFailed); n > 0 {
		return shown(fmt.Errorf("%d file(s) left unencrypted", n))
	}
	return nil
}

// displayPath shows path relative to the journal root when it is inside it.
func displayPath(root, path string) string {
	return filepath.ToSlash(utils.RelativePaths(root, []string{path})[0])
}

// formatDay formats a note date for headings.
func formatDay(t time.Time) string {
	if t.IsZero() {
		return "unknown day"
	}
	return t.Format("Monday, 02 January 2006")
}

// shownError marks an error whose message the command already printed.
type shownError struct{ error }

func (e shownError) Unwrap() error { return e.error }

// shown marks err as already printed to the user.
func shown(err error) error {
	if err == nil {
		return nil
	}
	return shownError{err}
}

// Reported reports whether err was already shown to the user, so main only
// has to set the exit code.
func Reported(err error) bool {
	var s shownError
	return errors.As(err, &s)
}
