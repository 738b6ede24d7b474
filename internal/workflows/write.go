package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/journal"
	"github.com/PolarWolf314/echo-journal/internal/session"
)

// WriteOptions configures the write workflow.
type WriteOptions struct {
	// Session is an unlocked journal session. Required.
	Session *session.Session

	// Compose returns the entry to save. It is only called when today's
	// note is writable, and should return ctx.Err() once ctx is cancelled.
	Compose func(ctx context.Context, note *journal.Note) (string, error)
}

// WriteResult contains the outcome of a write operation.
type WriteResult struct {
	// Note is today's note after the operation.
	Note *journal.Note

	// Saved is true when the entry was written to disk.
	Saved bool

	// Locked is true when today's note was already read-only.
	Locked bool
}

// Write opens today's note and, if it is still writable, saves the composed
// entry. An empty entry is not saved, so the note can still be written later.
//
// If ctx is cancelled before the entry is saved, nothing is written and
// ctx.Err() is returned. The session stays open for the caller to close.
func Write(ctx context.Context, opts WriteOptions) (*WriteResult, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("write: no session")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	note, err := opts.Session.OpenToday()
	if err != nil {
		return nil, fmt.Errorf("opening today's note: %w", err)
	}

	result := &WriteResult{Note: note}
	if !note.Writable() {
		result.Locked = true
		return result, nil
	}

	if opts.Compose == nil {
		return result, nil
	}
	content, err := opts.Compose(ctx, note)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("reading entry: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return result, nil
	}

	if err := opts.Session.Save(note, content); err != nil {
		return nil, err
	}
	result.Saved = true

	entry := audit.LogWithSession(audit.OpSave, opts.Session.ID())
	entry.Note = relativeNote(opts.Session.Root(), note.Path)
	audit.Log(entry)

	return result, nil
}
