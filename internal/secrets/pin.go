package secrets

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
)

// MaxPinAttempts is the number of wrong pins allowed in one session.
const MaxPinAttempts = 3

// PinStore persists the pin record and checks entered pins against it.
// It counts failed attempts; once MaxPinAttempts is reached it refuses every
// further verification for its lifetime.
type PinStore struct {
	path     string
	failures int
}

// NewPinStore returns a store backed by the pin file at path.
func NewPinStore(path string) *PinStore {
	return &PinStore{path: path}
}

// Path returns the pin file location.
func (s *PinStore) Path() string {
	return s.path
}

// HasPin reports whether a pin record exists.
func (s *PinStore) HasPin() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// AttemptsLeft returns how many verifications remain before lockout.
func (s *PinStore) AttemptsLeft() int {
	return MaxPinAttempts - s.failures
}

// CreatePin validates pin, writes its hash and returns the derived key.
// An existing record is never overwritten.
func (s *PinStore) CreatePin(pin string) (Key, error) {
	if err := ValidatePin(pin); err != nil {
		return Key{}, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return Key{}, fmt.Errorf("failed to create pin directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if errors.Is(err, fs.ErrExist) {
		return Key{}, eerrors.ErrPinAlreadyExists
	}
	if err != nil {
		return Key{}, fmt.Errorf("failed to create pin file: %w", err)
	}

	if _, err := f.WriteString(HashPin(pin)); err != nil {
		f.Close()
		os.Remove(s.path)
		return Key{}, fmt.Errorf("failed to write pin file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(s.path)
		return Key{}, fmt.Errorf("failed to write pin file: %w", err)
	}

	return DeriveKey(pin), nil
}

// VerifyPin checks pin against the stored record and returns the derived key.
//
// A malformed or wrong pin counts as a failed attempt and returns
// ErrAuthFailure. The attempt that exhausts MaxPinAttempts, and every call
// after it, returns ErrTooManyAttempts.
func (s *PinStore) VerifyPin(pin string) (Key, error) {
	if s.failures >= MaxPinAttempts {
		return Key{}, eerrors.ErrTooManyAttempts
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Key{}, eerrors.ErrPinNotFound
	}
	if err != nil {
		return Key{}, fmt.Errorf("failed to read pin file: %w", err)
	}
	stored := strings.TrimSpace(string(data))

	if err := ValidatePin(pin); err != nil {
		return Key{}, s.fail(err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(HashPin(pin))) != 1 {
		return Key{}, s.fail(eerrors.ErrAuthFailure)
	}

	return DeriveKey(pin), nil
}

func (s *PinStore) fail(cause error) error {
	s.failures++
	if s.failures >= MaxPinAttempts {
		return fmt.Errorf("%w: %w", eerrors.ErrTooManyAttempts, cause)
	}
	if errors.Is(cause, eerrors.ErrAuthFailure) {
		return cause
	}
	return fmt.Errorf("%w: %w", eerrors.ErrAuthFailure, cause)
}
