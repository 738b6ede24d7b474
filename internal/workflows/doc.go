// Package workflows provides high-level orchestration for journal commands.
//
// Workflows coordinate the pin store, the journal session and the audit log
// to implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Reads the pin and the entry from the terminal
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// # Available Workflows
//
//   - Unlock: Creates or verifies the pin and decrypts the journal
//   - Write: Saves today's entry if today's note is still writable
//   - Read: Opens a past note read-only
//   - Close: Re-encrypts the journal at the end of a session
//   - List: Lists notes, optionally filtered by glob
//   - Status: Reports on the journal without unlocking it
//   - Seal: Encrypts plaintext left behind by an interrupted session
//   - Log: Reads and filters the audit log
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Unlock(ctx, opts)
//	if errors.Is(err, eerrors.ErrTooManyAttempts) {
//	    // Exit without touching the journal
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
