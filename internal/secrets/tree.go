package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Outcome is what happened to a single file during a tree walk.
type Outcome string

const (
	OutcomeEncrypted Outcome = "encrypted"
	OutcomeDecrypted Outcome = "decrypted"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Skip reasons recorded in FileResult.Reason.
const (
	ReasonAlreadyEncrypted = "already encrypted"
	ReasonNotEncrypted     = "not encrypted"
	ReasonWrongKey         = "token rejected by key"
	ReasonNotRegular       = "not a regular file"
)

// FileResult records the outcome for one file.
type FileResult struct {
	Path    string
	Outcome Outcome
	Reason  string
	Err     error
}

// Summary collects the per-file results of a tree walk.
type Summary struct {
	Root    string
	Results []FileResult
}

// Count returns the number of files with outcome o.
func (s Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Paths returns the paths of files with outcome o, in walk order.
func (s Summary) Paths(o Outcome) []string {
	var paths []string
	for _, r := range s.Results {
		if r.Outcome == o {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// Failed returns the results that could not be read or written.
func (s Summary) Failed() []FileResult {
	var failed []FileResult
	for _, r := range s.Results {
		if r.Outcome == OutcomeFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// EncryptTree seals every regular file under root in place.
//
// It expects a tree that DecryptTree has opened: every file is sealed, even
// one whose content already looks like a token, so DecryptTree restores it
// byte for byte. Errors are recorded per file and never returned.
func EncryptTree(root string, key Key) Summary {
	return encryptTree(root, key, false)
}

// EncryptPlaintext seals the files under root that do not already open under
// key. It repairs a tree left partly decrypted by an interrupted session.
// Errors are recorded per file and never returned.
func EncryptPlaintext(root string, key Key) Summary {
	return encryptTree(root, key, true)
}

func encryptTree(root string, key Key, skipSealed bool) Summary {
	return walkTree(root, func(path string, mode fs.FileMode) FileResult {
		data, err := os.ReadFile(path)
		if err != nil {
			return failed(path, fmt.Errorf("failed to read %s: %w", path, err))
		}

		if skipSealed && IsSealed(key, data) {
			return FileResult{Path: path, Outcome: OutcomeSkipped, Reason: ReasonAlreadyEncrypted}
		}

		token, err := Seal(key, data)
		if err != nil {
			return failed(path, err)
		}

		if err := os.WriteFile(path, token, mode.Perm()); err != nil {
			return failed(path, fmt.Errorf("failed to write %s: %w", path, err))
		}

		return FileResult{Path: path, Outcome: OutcomeEncrypted}
	})
}

// DecryptTree opens every regular file under root in place.
//
// Any file that does not decrypt (plaintext from a first run, a different key,
// corruption) is left untouched and recorded as skipped with the reason.
// Errors are recorded per file and never returned.
func DecryptTree(root string, key Key) Summary {
	return walkTree(root, func(path string, mode fs.FileMode) FileResult {
		data, err := os.ReadFile(path)
		if err != nil {
			return failed(path, fmt.Errorf("failed to read %s: %w", path, err))
		}

		plaintext, err := Open(key, data)
		switch {
		case errors.Is(err, ErrNotAToken):
			return FileResult{Path: path, Outcome: OutcomeSkipped, Reason: ReasonNotEncrypted, Err: err}
		case errors.Is(err, ErrTokenRejected):
			return FileResult{Path: path, Outcome: OutcomeSkipped, Reason: ReasonWrongKey, Err: err}
		case err != nil:
			return FileResult{Path: path, Outcome: OutcomeSkipped, Reason: err.Error(), Err: err}
		}

		if err := os.WriteFile(path, plaintext, mode.Perm()); err != nil {
			return failed(path, fmt.Errorf("failed to write %s: %w", path, err))
		}

		return FileResult{Path: path, Outcome: OutcomeDecrypted}
	})
}

// walkTree applies fn to each regular file under root. A missing root is an
// empty journal, not an error.
func walkTree(root string, fn func(path string, mode fs.FileMode) FileResult) Summary {
	summary := Summary{Root: root}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			summary.Results = append(summary.Results, failed(path, err))
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			summary.Results = append(summary.Results, FileResult{Path: path, Outcome: OutcomeSkipped, Reason: ReasonNotRegular})
			return nil
		}

		info, err := d.Info()
		if err != nil {
			summary.Results = append(summary.Results, failed(path, err))
			return nil
		}

		summary.Results = append(summary.Results, fn(path, info.Mode()))
		return nil
	})

	return summary
}

func failed(path string, err error) FileResult {
	return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
}
