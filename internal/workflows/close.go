package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
	"github.com/PolarWolf314/echo-journal/internal/session"
)

// CloseOptions configures the close workflow.
type CloseOptions struct {
	// Session is the journal session to end. Required.
	Session *session.Session
}

// CloseResult contains the outcome of a close operation.
type CloseResult struct {
	// Summary reports what happened to every file.
	Summary secrets.Summary
}

// Close re-encrypts the journal and ends the session. Closing an already
// closed session returns the first summary and records nothing. Close runs to
// completion even if ctx is cancelled.
func Close(ctx context.Context, opts CloseOptions) (*CloseResult, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("close: no session")
	}

	if opts.Session.Closed() {
		return &CloseResult{Summary: opts.Session.Close()}, nil
	}

	summary := opts.Session.Close()
	logSummary(audit.OpEncrypt, opts.Session.ID(), summary)

	return &CloseResult{Summary: summary}, nil
}
