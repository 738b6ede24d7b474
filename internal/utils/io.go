package utils

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdinIsPiped reports whether stdin carries piped or redirected data.
func StdinIsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// ModeCharDevice is set when stdin is connected to a terminal.
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// ReadEntry reads a journal entry from r until EOF.
// An empty entry is returned as an empty string, not an error.
//
// If ctx is cancelled first, ReadEntry returns ctx.Err() without waiting for
// the read. Whatever was typed so far is dropped.
func ReadEntry(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("failed to read journal entry: %w", res.err)
		}
		return string(res.data), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
