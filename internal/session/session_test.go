package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
)

var testNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local)

func openTestSession(t *testing.T, root, pin string) *Session {
	t.Helper()
	s, err := Open(secrets.DeriveKey(pin), Options{
		Root:     root,
		NoteFile: "journal.txt",
		ID:       "test-session",
		Clock:    func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestSession_EndToEnd(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Echo")

	// First session: empty journal, write today's entry.
	first := openTestSession(t, root, "1234")
	note, err := first.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if !note.Writable() || note.Content != "" {
		t.Fatalf("Expected empty writable note, got %s %q", note.State(), note.Content)
	}
	if err := first.Save(note, "hello"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	summary := first.Close()
	if summary.Count(secrets.OutcomeEncrypted) != 1 {
		t.Fatalf("Expected 1 encrypted file, got %+v", summary.Results)
	}

	data, err := os.ReadFile(note.Path)
	if err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}
	if string(data) == "hello" {
		t.Fatal("Note must be encrypted at rest after Close")
	}

	// Second session with the same pin: content restored, read-only.
	second := openTestSession(t, root, "1234")
	if second.Opened().Count(secrets.OutcomeDecrypted) != 1 {
		t.Fatalf("Expected 1 decrypted file, got %+v", second.Opened().Results)
	}
	again, err := second.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if again.Content != "hello" || again.Writable() {
		t.Errorf("Expected read-only %q, got %s %q", "hello", again.State(), again.Content)
	}
	second.Close()
}

func TestSession_SavesTokenShapedEntry(t *testing.T) {
	root := t.TempDir()
	token, err := secrets.Seal(secrets.DeriveKey("1234"), []byte("an older entry"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	first := openTestSession(t, root, "1234")
	note, err := first.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if err := first.Save(note, string(token)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if summary := first.Close(); summary.Count(secrets.OutcomeEncrypted) != 1 {
		t.Fatalf("Expected the entry to be encrypted, got %+v", summary.Results)
	}

	second := openTestSession(t, root, "1234")
	defer second.Close()
	again, err := second.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if again.Content != string(token) {
		t.Errorf("Expected saved content %q, got %q", token, again.Content)
	}
}

func TestSession_CloseOnce(t *testing.T) {
	root := t.TempDir()
	s := openTestSession(t, root, "1234")
	note, err := s.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if err := s.Save(note, "once"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first := s.Close()
	sealed, err := os.ReadFile(note.Path)
	if err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}

	second := s.Close()
	if len(first.Results) != len(second.Results) {
		t.Error("Second Close should return the first summary")
	}
	after, _ := os.ReadFile(note.Path)
	if string(sealed) != string(after) {
		t.Error("Second Close must not touch the disk")
	}
	if !s.Closed() {
		t.Error("Expected session to report closed")
	}
}

func TestSession_ClosedRejectsUse(t *testing.T) {
	s := openTestSession(t, t.TempDir(), "1234")
	note, err := s.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	s.Close()

	if _, err := s.OpenToday(); !errors.Is(err, eerrors.ErrSessionClosed) {
		t.Errorf("Expected ErrSessionClosed from OpenToday, got %v", err)
	}
	if _, err := s.OpenOther(note.Path); !errors.Is(err, eerrors.ErrSessionClosed) {
		t.Errorf("Expected ErrSessionClosed from OpenOther, got %v", err)
	}
	if err := s.Save(note, "late"); !errors.Is(err, eerrors.ErrSessionClosed) {
		t.Errorf("Expected ErrSessionClosed from Save, got %v", err)
	}
	if s.Notes() != nil {
		t.Error("Expected no controller after Close")
	}
}

func TestSession_WrongPinLeavesTreeEncrypted(t *testing.T) {
	root := t.TempDir()
	s := openTestSession(t, root, "1234")
	note, err := s.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if err := s.Save(note, "private"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s.Close()
	sealed, _ := os.ReadFile(note.Path)

	other := openTestSession(t, root, "9999")
	if other.Opened().Count(secrets.OutcomeDecrypted) != 0 {
		t.Fatal("Wrong key must not decrypt anything")
	}
	other.Close()

	after, _ := os.ReadFile(note.Path)
	if string(sealed) != string(after) {
		t.Error("A session under the wrong key must leave ciphertext untouched")
	}

	// The right key still opens it.
	right := openTestSession(t, root, "1234")
	defer right.Close()
	today, err := right.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if today.Content != "private" {
		t.Errorf("Expected %q, got %q", "private", today.Content)
	}
}

func TestOpen_ZeroKey(t *testing.T) {
	if _, err := Open(secrets.Key{}, Options{Root: t.TempDir(), NoteFile: "journal.txt"}); err == nil {
		t.Error("Expected Open to refuse a zero key")
	}
}
