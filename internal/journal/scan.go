package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"time"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Entry is a note file found on disk. Entries are discovered by name only, so
// listing works while the notes are still encrypted.
type Entry struct {
	Path    string
	RelPath string
	Date    time.Time
}

// FindNotes returns every file named noteFile under root, oldest day first.
//
// Patterns are doublestar globs relative to root, matched against either the
// note path or its day directory, so "2026/Oct/*" and "2026/**" both select
// October's notes. With no patterns every note is returned. A missing root is
// an empty journal.
func FindNotes(root, noteFile string, patterns []string) ([]Entry, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}

	var entries []Entry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() || d.Name() != noteFile {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if len(patterns) > 0 && !matchAny(patterns, rel) {
			return nil
		}

		entry := Entry{Path: p, RelPath: rel}
		if date, err := DateFromPath(root, p); err == nil {
			entry.Date = date
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	if len(patterns) > 0 && len(entries) == 0 {
		return nil, eerrors.ErrNoFilesFound
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.RelPath < b.RelPath
	})

	return entries, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, path.Dir(rel)); ok {
			return true
		}
	}
	return false
}
