package workflows

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/configs"
	"github.com/PolarWolf314/echo-journal/internal/journal"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
)

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// Config is the journal configuration. If nil, it is loaded from disk.
	Config *configs.Config

	// Clock overrides time.Now for deciding which note is today's.
	Clock func() time.Time
}

// StatusResult contains the outcome of a status operation.
type StatusResult struct {
	// Root is the journal root.
	Root string

	// PinFile is the pin record location.
	PinFile string

	// HasPin is true when a pin has been created.
	HasPin bool

	// ConfigPath is the config file location.
	ConfigPath string

	// AuditLogPath is the audit log location.
	AuditLogPath string

	// NoteCount is the number of notes in the journal.
	NoteCount int

	// PlaintextNotes lists notes that do not look encrypted, relative to the
	// root. Outside a session this should be empty.
	PlaintextNotes []string

	// TodayPath is where today's note lives.
	TodayPath string

	// TodayWritten is true when today's note already exists.
	TodayWritten bool
}

// Status reports on the journal without unlocking it.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Clock != nil {
		now = opts.Clock
	}

	result := &StatusResult{
		Root:         cfg.Journal.Root,
		PinFile:      cfg.Journal.PinFile,
		HasPin:       secrets.NewPinStore(cfg.Journal.PinFile).HasPin(),
		ConfigPath:   configs.ConfigFilePath(),
		AuditLogPath: audit.LogPath(),
		TodayPath:    journal.NotePath(cfg.Journal.Root, cfg.Journal.NoteFile, now()),
	}

	notes, err := journal.FindNotes(cfg.Journal.Root, cfg.Journal.NoteFile, nil)
	if err != nil {
		return nil, err
	}
	result.NoteCount = len(notes)

	for _, n := range notes {
		data, err := os.ReadFile(n.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", n.RelPath, err)
		}
		if len(data) > 0 && !secrets.LooksSealed(data) {
			result.PlaintextNotes = append(result.PlaintextNotes, n.RelPath)
		}
	}

	_, err = os.Stat(result.TodayPath)
	switch {
	case err == nil:
		result.TodayWritten = true
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking today's note: %w", err)
	}

	return result, nil
}
