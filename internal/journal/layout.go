package journal

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
)

// DayLayout is the directory layout of one journal day: <year>/<Mon>/<day>.
const DayLayout = "2006/Jan/02"

// DateLayout is the date format accepted on the command line.
const DateLayout = "2006-01-02"

// DayDir returns the directory holding the note for t's calendar day.
func DayDir(root string, t time.Time) string {
	return filepath.Join(root, filepath.FromSlash(t.Format(DayLayout)))
}

// NotePath returns the note file path for t's calendar day.
func NotePath(root, noteFile string, t time.Time) string {
	return filepath.Join(DayDir(root, t), noteFile)
}

// DateFromPath recovers the day a note path belongs to. The path must be
// <root>/<year>/<Mon>/<day>/<file>.
func DateFromPath(root, path string) (time.Time, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", eerrors.ErrNotANote, path)
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 4 {
		return time.Time{}, fmt.Errorf("%w: %s is not <year>/<month>/<day>/<file>", eerrors.ErrNotANote, rel)
	}

	t, err := time.ParseInLocation(DayLayout, strings.Join(parts[:3], "/"), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", eerrors.ErrNotANote, rel, err)
	}
	return t, nil
}

// ParseDate parses a day given as 2006-01-02 or in the on-disk 2006/Jan/02 form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, DayLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", eerrors.ErrInvalidDateFormat, s)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
