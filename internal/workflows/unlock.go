package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PolarWolf314/echo-journal/internal/audit"
	"github.com/PolarWolf314/echo-journal/internal/configs"
	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	logger "github.com/PolarWolf314/echo-journal/internal/logging"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
	"github.com/PolarWolf314/echo-journal/internal/session"
)

// UnlockOptions configures the unlock workflow.
type UnlockOptions struct {
	// Config is the journal configuration. If nil, it is loaded from disk.
	Config *configs.Config

	// Prompt reads a pin from the user. Required.
	Prompt PinPrompter

	// OnRetry is called after each rejected pin. Optional.
	OnRetry RetryNotifier

	// Clock overrides time.Now for deciding which note is today's.
	Clock func() time.Time

	Logger logger.Logger
}

// UnlockResult contains the outcome of an unlock operation.
type UnlockResult struct {
	// Session is the open journal session. The caller must Close it.
	Session *session.Session

	// Config is the configuration the session was opened with.
	Config *configs.Config

	// FirstRun is true when the pin was created by this call.
	FirstRun bool

	// Attempts is the number of pin entries it took.
	Attempts int
}

// Unlock authenticates the user and decrypts the journal.
//
// On first run (no pin record) the user is asked to create a pin, re-prompting
// until it is well-formed, and the config file is written. Otherwise the pin
// is verified with up to secrets.MaxPinAttempts tries.
//
// Returns ErrTooManyAttempts when the user runs out of tries; no session is
// created and the journal stays encrypted. If ctx is cancelled, the prompt is
// abandoned and ctx.Err() returned; a tree already decrypted by then is
// re-encrypted first.
func Unlock(ctx context.Context, opts UnlockOptions) (*UnlockResult, error) {
	if opts.Prompt == nil {
		return nil, fmt.Errorf("unlock: no pin prompt configured")
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	sessionID := configs.GenerateUUID()
	store := secrets.NewPinStore(cfg.Journal.PinFile)
	result := &UnlockResult{Config: cfg, FirstRun: !store.HasPin()}

	var key secrets.Key
	if result.FirstRun {
		key, result.Attempts, err = createPin(ctx, store, opts)
		if err != nil {
			return nil, err
		}
		audit.Log(audit.LogWithSession(audit.OpCreatePin, sessionID))

		if cfg.Install.UUID == "" {
			cfg.Install.UUID = configs.GenerateUUID()
			cfg.Install.CreatedAt = time.Now().UTC()
			if err := configs.SaveConfig(cfg); err != nil {
				opts.Logger.Warnf("Could not write config: %v", err)
			}
		}
	} else {
		key, result.Attempts, err = verifyPin(ctx, store, opts)
		if errors.Is(err, eerrors.ErrTooManyAttempts) {
			entry := audit.LogWithSession(audit.OpLockout, sessionID)
			entry.Attempts = result.Attempts
			audit.Log(entry)
			return nil, err
		}
		if err != nil {
			return nil, err
		}
		entry := audit.LogWithSession(audit.OpUnlock, sessionID)
		entry.Attempts = result.Attempts
		audit.Log(entry)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, err := session.Open(key, session.Options{
		Root:     cfg.Journal.Root,
		NoteFile: cfg.Journal.NoteFile,
		ID:       sessionID,
		Clock:    opts.Clock,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	logSummary(audit.OpDecrypt, sessionID, sess.Opened())

	// Interrupted while decrypting: nobody will get the session to close it.
	if err := ctx.Err(); err != nil {
		logSummary(audit.OpEncrypt, sessionID, sess.Close())
		return nil, err
	}

	result.Session = sess
	return result, nil
}

// createPin prompts until a well-formed pin is written.
func createPin(ctx context.Context, store *secrets.PinStore, opts UnlockOptions) (secrets.Key, int, error) {
	attempts := 0
	for {
		pin, err := opts.Prompt(ctx, PromptCreatePin)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			return secrets.Key{}, attempts, fmt.Errorf("reading pin: %w", err)
		}
		attempts++

		key, err := store.CreatePin(pin)
		if errors.Is(err, eerrors.ErrInvalidPinFormat) {
			if opts.OnRetry != nil {
				opts.OnRetry(err, -1)
			}
			continue
		}
		if err != nil {
			return secrets.Key{}, attempts, err
		}

		opts.Logger.Infof("Created pin record at %s", store.Path())
		return key, attempts, nil
	}
}

// verifyPin prompts until the pin matches or the attempts run out.
func verifyPin(ctx context.Context, store *secrets.PinStore, opts UnlockOptions) (secrets.Key, int, error) {
	attempts := 0
	for {
		pin, err := opts.Prompt(ctx, PromptEnterPin)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			return secrets.Key{}, attempts, fmt.Errorf("reading pin: %w", err)
		}
		attempts++

		key, err := store.VerifyPin(pin)
		if errors.Is(err, eerrors.ErrTooManyAttempts) {
			return secrets.Key{}, attempts, err
		}
		if errors.Is(err, eerrors.ErrAuthFailure) {
			opts.Logger.Debugf("Pin rejected: %v", err)
			if opts.OnRetry != nil {
				opts.OnRetry(err, store.AttemptsLeft())
			}
			continue
		}
		if err != nil {
			return secrets.Key{}, attempts, err
		}

		return key, attempts, nil
	}
}
