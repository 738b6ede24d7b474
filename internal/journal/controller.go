package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/PolarWolf314/echo-journal/internal/utils"
)

// Controller owns the current note of a session and decides whether it may be
// written. Once a note is saved, or once any past note has been opened, no
// note becomes writable again for the lifetime of the controller.
type Controller struct {
	root     string
	noteFile string
	now      func() time.Time

	current *Note
	browsed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController returns a controller for notes named noteFile under root.
func NewController(root, noteFile string, opts ...Option) *Controller {
	c := &Controller{
		root:     root,
		noteFile: noteFile,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the journal root.
func (c *Controller) Root() string { return c.root }

// NoteFile returns the per-day note file name.
func (c *Controller) NoteFile() string { return c.noteFile }

// Current returns the open note, or nil before anything was opened.
func (c *Controller) Current() *Note { return c.current }

// TodayPath returns where today's note lives.
func (c *Controller) TodayPath() string {
	return NotePath(c.root, c.noteFile, c.now())
}

// OpenToday creates today's directory if needed and opens today's note.
//
// The note is writable only if no file exists yet and no past note has been
// browsed in this session.
func (c *Controller) OpenToday() (*Note, error) {
	today := c.now()
	dir := DayDir(c.root, today)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	note := &Note{
		Path: filepath.Join(dir, c.noteFile),
		Date: time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()),
	}

	content, err := os.ReadFile(note.Path)
	switch {
	case err == nil:
		note.Content = string(content)
		note.lock(StateReadOnly, LockExisting)
	case errors.Is(err, fs.ErrNotExist):
		if c.browsed {
			note.lock(StateReadOnly, LockBrowsing)
		} else {
			note.state = StateWritable
		}
	default:
		return nil, fmt.Errorf("failed to read %s: %w", note.Path, err)
	}

	c.switchTo(note)
	return note, nil
}

// OpenOther opens any note under the root as read-only.
//
// This is a hard switch: if the current note was still writable it is
// forfeited, its unsaved content is discarded and it can no longer be saved.
// From here on OpenToday only yields read-only notes.
func (c *Controller) OpenOther(path string) (*Note, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.root, path)
	}
	path = filepath.Clean(path)

	if !utils.IsWithin(c.root, path) || filepath.Base(path) != c.noteFile {
		return nil, fmt.Errorf("%w: %s", eerrors.ErrNotANote, path)
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", eerrors.ErrNoteNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", eerrors.ErrNotANote, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	note := &Note{Path: path, Content: string(content)}
	if date, err := DateFromPath(c.root, path); err == nil {
		note.Date = date
	}

	if !note.Date.IsZero() && SameDay(c.now(), note.Date) {
		note.lock(StateReadOnly, LockBrowsing)
	} else {
		note.lock(StateReadOnly, LockPastDay)
	}

	c.browsed = true
	c.switchTo(note)
	return note, nil
}

// OpenDate opens the note written on t's day, read-only, as OpenOther does.
func (c *Controller) OpenDate(t time.Time) (*Note, error) {
	return c.OpenOther(NotePath(c.root, c.noteFile, t))
}

// Save writes content to note and locks it for the rest of the session.
//
// Directories are not recreated: if the day directory was removed since the
// note was opened, the write error is returned and the note stays writable.
func (c *Controller) Save(note *Note, content string) error {
	if note == nil {
		return fmt.Errorf("%w: no note is open", eerrors.ErrNoteNotFound)
	}
	if !note.Writable() {
		reason := note.LockReason()
		if reason == "" {
			reason = string(note.State())
		}
		return fmt.Errorf("%w: %s", eerrors.ErrNoteReadOnly, reason)
	}

	if err := os.WriteFile(note.Path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to save %s: %w", note.Path, err)
	}

	note.Content = content
	note.lock(StateSaved, LockSaved)
	return nil
}

func (c *Controller) switchTo(note *Note) {
	if prev := c.current; prev != nil && prev != note && prev.Writable() {
		prev.lock(StateReadOnly, LockForfeited)
	}
	c.current = note
}
