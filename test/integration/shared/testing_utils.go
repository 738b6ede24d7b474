// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up a throwaway journal,
// feeding pins and entries, capturing output, and checking what is on disk.
package shared

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/echo-journal/cmd"
	"github.com/PolarWolf314/echo-journal/internal/configs"
	logger "github.com/PolarWolf314/echo-journal/internal/logging"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
	"github.com/spf13/cobra"
)

// Today is the fixed day every integration test runs on.
var Today = time.Date(2026, time.October, 19, 20, 0, 0, 0, time.Local)

// SetupTestEnvironment points every user path at a temporary home directory
// and fixes the clock to Today. It returns the home directory.
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempHome, err := os.MkdirTemp("", "echo-home-*")
	if err != nil {
		t.Fatalf("Failed to create temp home directory: %v", err)
	}

	originalUserSettings := configs.UserEchoSettings
	t.Cleanup(func() {
		configs.UserEchoSettings = originalUserSettings
		cmd.ResetGlobalState()
		os.RemoveAll(tempHome)
	})

	configs.UserEchoSettings = &configs.UserSettings{
		HomeDir:         tempHome,
		UserConfigsPath: filepath.Join(tempHome, "config"),
		UserDataPath:    filepath.Join(tempHome, "data"),
		Username:        "testuser",
	}

	cmd.ResetGlobalState()
	cmd.SetClock(func() time.Time { return Today })
	return tempHome
}

// SetPins makes the pin prompt answer with values in order, then fail.
func SetPins(values ...string) {
	cmd.SetPinReader(func(string) (string, error) {
		if len(values) == 0 {
			return "", io.EOF
		}
		v := values[0]
		values = values[1:]
		return v, nil
	})
}

// SetEntry makes today's entry read from s.
func SetEntry(s string) {
	cmd.SetEntryInput(strings.NewReader(s))
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
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

// CreateTestCLI prepares the echo-journal command to run with args and flags.
func CreateTestCLI(args []string, verboseFlag, debugFlag bool) *cobra.Command {
	cmd.SetVerbose(verboseFlag)
	cmd.SetDebug(debugFlag)

	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	root := cmd.GetJournalCmd()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.PersistentFlags().Set("verbose", fmt.Sprintf("%t", verboseFlag)); err != nil {
		log.Fatalf("Failed to set verbose flag for testing: %s", err)
	}
	if err := root.PersistentFlags().Set("debug", fmt.Sprintf("%t", debugFlag)); err != nil {
		log.Fatalf("Failed to set debug flag for testing: %s", err)
	}

	return root
}

// Run runs echo-journal with args and returns everything it printed.
func Run(args ...string) (string, error) {
	return CaptureOutput(func() error {
		return CreateTestCLI(args, false, false).Execute()
	})
}

// NotePath returns where the note for day lives under home.
func NotePath(home string, day time.Time) string {
	return filepath.Join(home, configs.DefaultJournalDirName,
		day.Format("2006"), day.Format("Jan"), day.Format("02"), configs.DefaultNoteFileName)
}

// VerifyEncrypted checks that the note at path opens under pin to want.
func VerifyEncrypted(t *testing.T, path, pin, want string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if strings.Contains(string(data), want) {
		t.Errorf("Note %s is in plaintext", path)
	}

	plain, err := secrets.Open(secrets.DeriveKey(pin), data)
	if err != nil {
		t.Fatalf("Note %s does not open under the pin: %v", path, err)
	}
	if string(plain) != want {
		t.Errorf("Expected %q in %s, got %q", want, path, plain)
	}
}
