// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up a throwaway journal,
// feeding pins and entries, and capturing output.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/echo-journal/internal/configs"
	logger "github.com/PolarWolf314/echo-journal/internal/logging"
	"github.com/spf13/cobra"
)

var testNow = time.Date(2026, time.October, 19, 21, 30, 0, 0, time.Local)

// setupTestEnvironment points every user path at a temporary home directory
// and fixes the clock. It returns the home directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempHome := t.TempDir()

	originalUserSettings := configs.UserEchoSettings
	t.Cleanup(func() {
		configs.UserEchoSettings = originalUserSettings
		ResetGlobalState()
	})

	configs.UserEchoSettings = &configs.UserSettings{
		HomeDir:         tempHome,
		UserConfigsPath: filepath.Join(tempHome, "config"),
		UserDataPath:    filepath.Join(tempHome, "data"),
		Username:        "testuser",
	}

	ResetGlobalState()
	now = func() time.Time { return testNow }
	return tempHome
}

// withPins makes the pin prompt answer with values in order.
func withPins(values ...string) {
	readPin = func(context.Context, string) (string, error) {
		if len(values) == 0 {
			return "", io.EOF
		}
		v := values[0]
		values = values[1:]
		return v, nil
	}
}

// withEntry makes today's entry read from s.
func withEntry(s string) {
	entryInput = strings.NewReader(s)
}

// todayNote is where today's note lives in the test journal.
func todayNote(home string) string {
	return filepath.Join(home, configs.DefaultJournalDirName, "2026", "Oct", "19", configs.DefaultNoteFileName)
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI prepares JournalCmd to run with the given arguments and flags.
func createTestCLI(args []string, verboseFlag, debugFlag bool) *cobra.Command {
	verbose = verboseFlag
	debug = debugFlag

	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	JournalCmd.SetArgs(args)

	if err := JournalCmd.PersistentFlags().Set("verbose", fmt.Sprintf("%t", verboseFlag)); err != nil {
		log.Fatalf("Failed to set verbose flag for testing: %s", err)
	}
	if err := JournalCmd.PersistentFlags().Set("debug", fmt.Sprintf("%t", debugFlag)); err != nil {
		log.Fatalf("Failed to set debug flag for testing: %s", err)
	}

	return JournalCmd
}

// runCLI runs echo-journal with args and returns everything it printed.
func runCLI(args ...string) (string, error) {
	return captureOutput(func() error {
		return createTestCLI(args, false, false).Execute()
	})
}

// firstRun creates the pin and writes today's entry.
func firstRun(t *testing.T, pin, entry string) {
	t.Helper()
	withPins(pin)
	withEntry(entry)
	output, err := runCLI()
	if err != nil {
		t.Fatalf("First run failed: %v\nOutput: %s", err, output)
	}
}
