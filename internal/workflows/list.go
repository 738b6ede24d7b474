package workflows

import (
	"context"

	"github.com/PolarWolf314/echo-journal/internal/configs"
	"github.com/PolarWolf314/echo-journal/internal/journal"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Config is the journal configuration. If nil, it is loaded from disk.
	Config *configs.Config

	// Patterns filters notes with doublestar globs relative to the root,
	// e.g. "2026/Oct/*". If empty, every note is listed.
	Patterns []string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Root is the journal root.
	Root string

	// Notes are the matching notes, oldest first.
	Notes []journal.Entry
}

// List finds the notes in the journal. Note paths are not encrypted, so no
// pin is needed.
//
// Returns ErrNoFilesFound if patterns were given and none matched.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	notes, err := journal.FindNotes(cfg.Journal.Root, cfg.Journal.NoteFile, opts.Patterns)
	if err != nil {
		return nil, err
	}

	return &ListResult{Root: cfg.Journal.Root, Notes: notes}, nil
}
