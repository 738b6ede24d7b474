package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/configs"
	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	logger "github.com/PolarWolf314/echo-journal/internal/logging"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
)

// SealOptions configures the seal workflow.
type SealOptions struct {
	// Config is the journal configuration. If nil, it is loaded from disk.
	Config *configs.Config

	// Prompt reads a pin from the user. Required.
	Prompt PinPrompter

	// OnRetry is called after each rejected pin. Optional.
	OnRetry RetryNotifier

	Logger logger.Logger
}

// SealResult contains the outcome of a seal operation.
type SealResult struct {
	// Root is the journal root.
	Root string

	// Summary reports what happened to every file.
	Summary secrets.Summary
}

// Seal encrypts any plaintext left in the journal without opening a note.
// It recovers from a session that was killed before it could re-encrypt.
// Files already encrypted under the pin are left as they are. Once the pin is
// accepted the encryption runs to completion even if ctx is cancelled.
//
// Returns ErrPinNotFound if no pin has been created.
// Returns ErrTooManyAttempts when the user runs out of tries.
func Seal(ctx context.Context, opts SealOptions) (*SealResult, error) {
	if opts.Prompt == nil {
		return nil, fmt.Errorf("seal: no pin prompt configured")
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	store := secrets.NewPinStore(cfg.Journal.PinFile)
	if !store.HasPin() {
		return nil, eerrors.ErrPinNotFound
	}

	sessionID := configs.GenerateUUID()
	key, attempts, err := verifyPin(ctx, store, UnlockOptions{
		Prompt:  opts.Prompt,
		OnRetry: opts.OnRetry,
		Logger:  opts.Logger,
	})
	if errors.Is(err, eerrors.ErrTooManyAttempts) {
		entry := audit.LogWithSession(audit.OpLockout, sessionID)
		entry.Attempts = attempts
		audit.Log(entry)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	summary := secrets.EncryptPlaintext(cfg.Journal.Root, key)
	for _, r := range summary.Failed() {
		opts.Logger.WarnfAlways("Could not encrypt %s: %v", r.Path, r.Err)
	}
	logSummary(audit.OpSeal, sessionID, summary)

	return &SealResult{Root: cfg.Journal.Root, Summary: summary}, nil
}
