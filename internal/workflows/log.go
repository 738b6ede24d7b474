package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Since filters entries after this date (YYYY-MM-DD format).
	Since string

	// Until filters entries before this date (YYYY-MM-DD format).
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the audit log.
//
// Returns ErrNoFilesFound if no audit log exists.
// Returns ErrInvalidDateFormat if the date format is invalid.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	if entries == nil {
		return nil, eerrors.ErrNoFilesFound
	}

	result := &LogResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	filtered := entries

	if opts.Operations != "" {
		ops := strings.Split(opts.Operations, ",")
		for i := range ops {
			ops[i] = strings.TrimSpace(ops[i])
		}
		filtered = filterByOperations(filtered, ops)
	}

	if opts.Since != "" {
		sinceTime, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", eerrors.ErrInvalidDateFormat)
		}
		filtered = filterSince(filtered, sinceTime)
	}

	if opts.Until != "" {
		untilTime, err := time.Parse("2006-01-02", opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", eerrors.ErrInvalidDateFormat)
		}
		// Include the entire day by setting to end of day.
		untilTime = untilTime.Add(24*time.Hour - time.Nanosecond)
		filtered = filterUntil(filtered, untilTime)
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, limit takes first N (most recent).
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, limit takes last N (most recent).
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

// filterByOperations filters entries by operation types.
func filterByOperations(entries []audit.Entry, ops []string) []audit.Entry {
	opSet := make(map[string]bool)
	for _, op := range ops {
		opSet[strings.ToLower(op)] = true
	}

	var result []audit.Entry
	for _, e := range entries {
		if opSet[strings.ToLower(e.Operation)] {
			result = append(result, e)
		}
	}
	return result
}

// filterSince filters entries to only include those at or after the given time.
func filterSince(entries []audit.Entry, since time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, err := e.Time()
		if err != nil {
			continue
		}
		if !t.Before(since) {
			result = append(result, e)
		}
	}
	return result
}

// filterUntil filters entries to only include those at or before the given time.
func filterUntil(entries []audit.Entry, until time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, err := e.Time()
		if err != nil {
			continue
		}
		if !t.After(until) {
			result = append(result, e)
		}
	}
	return result
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS format.
func FormatDateTime(ts string) string {
	t, err := time.Parse(audit.TimestampLayout, ts)
	if err != nil {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails formats the details for a log entry.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case audit.OpEncrypt, audit.OpDecrypt, audit.OpSeal:
		details := fmt.Sprintf("%d files", e.FilesCount)
		if e.SkippedCount > 0 {
			details += fmt.Sprintf(", %d skipped", e.SkippedCount)
		}
		if e.FailedCount > 0 {
			details += fmt.Sprintf(", %d failed", e.FailedCount)
		}
		return details
	case audit.OpSave, audit.OpRead:
		return e.Note
	case audit.OpUnlock, audit.OpLockout:
		if e.Attempts == 1 {
			return "1 attempt"
		}
		return fmt.Sprintf("%d attempts", e.Attempts)
	default:
		return ""
	}
}
