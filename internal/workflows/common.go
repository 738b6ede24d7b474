package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/configs"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
)

// Prompts shown when asking for the pin.
const (
	PromptCreatePin = "Create a 4-digit pin: "
	PromptEnterPin  = "Enter your pin: "
)

// PinPrompter asks the user for a pin and returns what was typed. It should
// give up with ctx.Err() once ctx is cancelled.
type PinPrompter func(ctx context.Context, prompt string) (string, error)

// RetryNotifier is told about every rejected pin entry before the next
// prompt. attemptsLeft is negative when entries are not limited, as when
// creating the pin.
type RetryNotifier func(err error, attemptsLeft int)

// loadConfig returns cfg, or the on-disk config when cfg is nil.
func loadConfig(cfg *configs.Config) (*configs.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	loaded, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return loaded, nil
}

// relativeNote returns path relative to root for audit entries.
func relativeNote(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// logSummary records a codec run in the audit log.
func logSummary(op, sessionID string, summary secrets.Summary) {
	entry := audit.LogWithSession(op, sessionID)
	entry.FilesCount = summary.Count(secrets.OutcomeEncrypted) + summary.Count(secrets.OutcomeDecrypted)
	entry.SkippedCount = summary.Count(secrets.OutcomeSkipped)
	entry.FailedCount = summary.Count(secrets.OutcomeFailed)
	audit.Log(entry)
}
