package cmd

import (
	"context"
	"io"
	"os"
	"time"

	logger "github.com/PolarWolf314/echo-journal/internal/logging"
	"github.com/PolarWolf314/echo-journal/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// readPin reads a pin without echoing it.
	readPin func(ctx context.Context, prompt string) (string, error) = utils.ReadPin

	// entryInput is where today's entry is read from.
	entryInput io.Reader = os.Stdin

	// now decides which day's note is today's.
	now = time.Now

	JournalCmd = &cobra.Command{
		Use:   "echo-journal",
		Short: "A pin-locked daily journal, encrypted at rest",
		Long: `Echo keeps one journal entry per day, encrypted with a key derived from
your 4-digit pin. Notes are decrypted only while a session runs and are
re-encrypted when it ends.

Running echo-journal with no command writes today's entry:

  echo-journal               # type the entry, finish with Ctrl-D
  echo-journal < entry.txt   # the pin is then read from the terminal

Once saved, an entry can never be edited again.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing echo-journal with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: runWrite,
	}
)

func init() {
	JournalCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	JournalCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	JournalCmd.AddCommand(writeCmd)
	JournalCmd.AddCommand(readCmd)
	JournalCmd.AddCommand(listCmd)
	JournalCmd.AddCommand(statusCmd)
	JournalCmd.AddCommand(sealCmd)
	JournalCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetJournalCmd returns the JournalCmd for testing.
func GetJournalCmd() *cobra.Command {
	return JournalCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	readPin = utils.ReadPin
	entryInput = os.Stdin
	now = time.Now
	JournalCmd.SetContext(context.Background())
	resetLogCommandState()
	resetStatusCommandState()
	resetCobraFlagState(JournalCmd)
}

// resetCobraFlagState clears the Changed mark on every flag of cmd and its
// subcommands to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// SetPinReader replaces the pin prompt for testing.
func SetPinReader(fn func(prompt string) (string, error)) {
	readPin = func(_ context.Context, prompt string) (string, error) {
		return fn(prompt)
	}
}

// SetEntryInput replaces the reader today's entry comes from for testing.
func SetEntryInput(r io.Reader) {
	entryInput = r
}

// SetClock replaces the clock that decides which day is today for testing.
func SetClock(fn func() time.Time) {
	now = fn
}
