package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
)

func seedAuditLog(t *testing.T) {
	t.Helper()
	setupJournal(t)
	audit.Log(audit.Entry{Timestamp: "2026-10-17T08:00:00.000000Z", Operation: audit.OpUnlock, Attempts: 1})
	audit.Log(audit.Entry{Timestamp: "2026-10-17T08:00:01.000000Z", Operation: audit.OpDecrypt, FilesCount: 3})
	audit.Log(audit.Entry{Timestamp: "2026-10-18T21:00:00.000000Z", Operation: audit.OpSave, Note: "2026/Oct/18/journal.txt"})
	audit.Log(audit.Entry{Timestamp: "2026-10-19T07:30:00.000000Z", Operation: audit.OpLockout, Attempts: 3})
}

func TestLog_NoLog(t *testing.T) {
	setupJournal(t)
	if _, err := Log(context.Background(), LogOptions{}); !errors.Is(err, eerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestLog_Filters(t *testing.T) {
	seedAuditLog(t)

	tests := []struct {
		name  string
		opts  LogOptions
		want  []string
		total int
	}{
		{"All", LogOptions{}, []string{"unlock", "decrypt", "save", "lockout"}, 4},
		{"Operations", LogOptions{Operations: "save, LOCKOUT"}, []string{"save", "lockout"}, 4},
		{"Since", LogOptions{Since: "2026-10-18"}, []string{"save", "lockout"}, 4},
		{"Until", LogOptions{Until: "2026-10-17"}, []string{"unlock", "decrypt"}, 4},
		{"Limit", LogOptions{Limit: 1}, []string{"lockout"}, 4},
		{"ReverseLimit", LogOptions{Reverse: true, Limit: 2}, []string{"lockout", "save"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Log(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Log failed: %v", err)
			}
			if result.TotalEntriesBeforeFilter != tt.total {
				t.Errorf("Expected %d total entries, got %d", tt.total, result.TotalEntriesBeforeFilter)
			}
			if len(result.Entries) != len(tt.want) {
				t.Fatalf("Expected %d entries, got %d", len(tt.want), len(result.Entries))
			}
			for i, op := range tt.want {
				if result.Entries[i].Operation != op {
					t.Errorf("Entry %d: expected %s, got %s", i, op, result.Entries[i].Operation)
				}
			}
		})
	}
}

func TestLog_InvalidDate(t *testing.T) {
	seedAuditLog(t)
	if _, err := Log(context.Background(), LogOptions{Since: "last week"}); !errors.Is(err, eerrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
	if _, err := Log(context.Background(), LogOptions{Until: "19/10/2026"}); !errors.Is(err, eerrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestFormatDetails(t *testing.T) {
	tests := []struct {
		entry audit.Entry
		want  string
	}{
		{audit.Entry{Operation: audit.OpDecrypt, FilesCount: 3}, "3 files"},
		{audit.Entry{Operation: audit.OpEncrypt, FilesCount: 2, SkippedCount: 1, FailedCount: 1}, "2 files, 1 skipped, 1 failed"},
		{audit.Entry{Operation: audit.OpSave, Note: "2026/Oct/18/journal.txt"}, "2026/Oct/18/journal.txt"},
		{audit.Entry{Operation: audit.OpUnlock, Attempts: 1}, "1 attempt"},
		{audit.Entry{Operation: audit.OpLockout, Attempts: 3}, "3 attempts"},
		{audit.Entry{Operation: audit.OpCreatePin}, ""},
	}

	for _, tt := range tests {
		if got := FormatDetails(tt.entry); got != tt.want {
			t.Errorf("FormatDetails(%+v) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime("2026-10-19T07:30:00.000000Z"); got != "2026-10-19 07:30:00" {
		t.Errorf("Unexpected %q", got)
	}
	if got := FormatDateTime("garbage"); got != "garbage" {
		t.Errorf("Unexpected %q", got)
	}
}
