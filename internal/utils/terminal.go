package utils

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// ReadPin prompts for a pin without echoing input. It reads from stdin when
// that is a terminal and from /dev/tty (or CON on Windows) when stdin carries
// the journal entry itself.
//
// If ctx is cancelled while waiting, the terminal state is restored and
// ctx.Err() is returned.
func ReadPin(ctx context.Context, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		tty, err := os.Open(ttyPath())
		if err != nil {
			return "", fmt.Errorf("cannot open %s for pin input: %w", ttyPath(), err)
		}
		defer tty.Close()

		fd = int(tty.Fd())
		if !term.IsTerminal(fd) {
			return "", fmt.Errorf("%s is not a terminal", ttyPath())
		}
	}

	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read terminal state: %w", err)
	}

	type result struct {
		pin []byte
		err error
	}
	done := make(chan result, 1)

	fmt.Fprint(os.Stderr, prompt)
	go func() {
		pin, err := term.ReadPassword(fd)
		done <- result{pin, err}
	}()

	select {
	case r := <-done:
		fmt.Fprintln(os.Stderr) // Add newline after hidden input
		if r.err != nil {
			return "", fmt.Errorf("failed to read pin: %w", r.err)
		}
		return string(r.pin), nil
	case <-ctx.Done():
		// ReadPassword turned echo off and will never get to turn it back on.
		_ = term.Restore(fd, state)
		fmt.Fprintln(os.Stderr)
		return "", ctx.Err()
	}
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}
