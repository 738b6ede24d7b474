package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/echo-journal/internal/configs"
)

// Operation names recorded in the audit log.
const (
	OpCreatePin = "create-pin"
	OpUnlock    = "unlock"
	OpLockout   = "lockout"
	OpDecrypt   = "decrypt"
	OpEncrypt   = "encrypt"
	OpSave      = "save"
	OpRead      = "read"
	OpSeal      = "seal"
)

// TimestampLayout is the format of Entry.Timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	User      string `json:"user"`    // OS user running the journal.
	Session   string `json:"session"` // Session UUID.
	Operation string `json:"op"`      // Operation name.

	// Optional fields depending on operation.
	Note         string `json:"note,omitempty"`          // For save/read, relative to the journal root.
	Attempts     int    `json:"attempts,omitempty"`      // For unlock/lockout.
	FilesCount   int    `json:"files_count,omitempty"`   // For encrypt/decrypt/seal.
	SkippedCount int    `json:"skipped_count,omitempty"` // For encrypt/decrypt/seal.
	FailedCount  int    `json:"failed_count,omitempty"`  // For encrypt/decrypt/seal.
}

// Time parses the entry timestamp.
func (e Entry) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, e.Timestamp)
}

// Log appends an entry to the audit log.
// If logging fails, it does not return an error.
// Operations should not fail just because audit logging failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampLayout)
	}
	if entry.User == "" {
		entry.User = configs.UserEchoSettings.Username
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithSession is a convenience function that starts an entry for op
// within the given session.
func LogWithSession(op, session string) Entry {
	return Entry{
		Operation: op,
		Session:   session,
		User:      configs.UserEchoSettings.Username,
	}
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return configs.AuditLogPath()
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
