package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/journal"
	"github.com/PolarWolf314/echo-journal/internal/session"
)

// ReadOptions configures the read workflow.
type ReadOptions struct {
	// Session is an unlocked journal session. Required.
	Session *session.Session

	// Target is a date (YYYY-MM-DD) or a note path, absolute or relative to
	// the journal root.
	Target string
}

// ReadResult contains the outcome of a read operation.
type ReadResult struct {
	// Note is the opened note. It is always read-only.
	Note *journal.Note

	// RelPath is the note path relative to the journal root.
	RelPath string
}

// Read opens a note for viewing. Opening any note this way makes the rest
// of the session read-only.
//
// Returns ErrInvalidDateFormat if Target is neither a date nor a path.
// Returns ErrNoteNotFound if nothing was written on that day.
// Returns ErrNotANote if the path is outside the journal.
func Read(ctx context.Context, opts ReadOptions) (*ReadResult, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("read: no session")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := strings.TrimSpace(opts.Target)

	var note *journal.Note
	var err error
	if isPathLike(target) {
		note, err = opts.Session.OpenOther(target)
	} else {
		date, perr := journal.ParseDate(target)
		if perr != nil {
			return nil, perr
		}
		note, err = opts.Session.OpenDate(date)
	}
	if err != nil {
		return nil, err
	}

	rel := relativeNote(opts.Session.Root(), note.Path)
	entry := audit.LogWithSession(audit.OpRead, opts.Session.ID())
	entry.Note = rel
	audit.Log(entry)

	return &ReadResult{Note: note, RelPath: rel}, nil
}

// isPathLike reports whether target names a file rather than a date.
// 2026/Oct/19 has separators but is a day, so it needs at least four parts.
func isPathLike(target string) bool {
	if filepath.IsAbs(target) {
		return true
	}
	return len(strings.Split(filepath.ToSlash(target), "/")) >= 4
}
