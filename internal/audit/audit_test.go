package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/echo-journal/internal/configs"
)

// withTempDataDir points the audit log at a temporary directory.
func withTempDataDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.UserEchoSettings
	configs.UserEchoSettings = &configs.UserSettings{
		HomeDir:         tempDir,
		UserConfigsPath: filepath.Join(tempDir, "config"),
		UserDataPath:    filepath.Join(tempDir, "data"),
		Username:        "tester",
	}
	t.Cleanup(func() {
		configs.UserEchoSettings = originalSettings
	})

	return filepath.Join(tempDir, "data", "audit.jsonl")
}

func TestLog_CreatesFile(t *testing.T) {
	logPath := withTempDataDir(t)

	Log(Entry{Operation: OpUnlock, Session: "s-1"})

	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
	if err != nil {
		t.Fatalf("Failed to stat audit log: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := withTempDataDir(t)

	Log(Entry{Operation: OpUnlock})
	Log(Entry{Operation: OpDecrypt})
	Log(Entry{Operation: OpEncrypt})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_FillsDefaults(t *testing.T) {
	logPath := withTempDataDir(t)

	Log(Entry{Operation: OpSave, Note: "2026/Oct/19/journal.txt"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	if parsed.User != "tester" {
		t.Errorf("Expected user tester, got %s", parsed.User)
	}
	if !strings.HasSuffix(parsed.Timestamp, "Z") || !strings.Contains(parsed.Timestamp, ".") {
		t.Errorf("Unexpected timestamp format %s", parsed.Timestamp)
	}
	if _, err := parsed.Time(); err != nil {
		t.Errorf("Timestamp should parse: %v", err)
	}
	if parsed.Note != "2026/Oct/19/journal.txt" {
		t.Errorf("Expected note path, got %s", parsed.Note)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := withTempDataDir(t)

	Log(Entry{Operation: OpUnlock, Session: "s-1"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	line := string(data)
	for _, field := range []string{"note", "attempts", "files_count", "skipped_count", "failed_count"} {
		if strings.Contains(line, `"`+field+`"`) {
			t.Errorf("Expected %s to be omitted, got %s", field, line)
		}
	}
}

func TestLogWithSession(t *testing.T) {
	withTempDataDir(t)

	entry := LogWithSession(OpRead, "abc")
	if entry.Operation != OpRead || entry.Session != "abc" || entry.User != "tester" {
		t.Errorf("Unexpected entry %+v", entry)
	}
}

func TestReadEntries_Missing(t *testing.T) {
	withTempDataDir(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error for missing log, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestReadEntries_RoundTrip(t *testing.T) {
	withTempDataDir(t)

	Log(Entry{Operation: OpDecrypt, FilesCount: 4, SkippedCount: 1})
	Log(Entry{Operation: OpSave, Note: "2026/Oct/19/journal.txt"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Failed to read entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].FilesCount != 4 || entries[0].SkippedCount != 1 {
		t.Errorf("Unexpected counts %+v", entries[0])
	}
	if entries[1].Operation != OpSave {
		t.Errorf("Expected save, got %s", entries[1].Operation)
	}
}

func TestParseEntries_SkipsMalformed(t *testing.T) {
	data := []byte(`{"ts":"2026-10-19T09:00:00.000000Z","user":"a","session":"s","op":"unlock"}
not json
{"ts":"2026-10-19T09:01:00.000000Z","user":"a","session":"s","op":"save"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != OpUnlock || entries[1].Operation != OpSave {
		t.Errorf("Unexpected operations %s, %s", entries[0].Operation, entries[1].Operation)
	}
}

func TestParseEntries_Empty(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil || entries != nil {
		t.Errorf("Expected nil, nil; got %v, %v", entries, err)
	}
}
