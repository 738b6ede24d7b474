package session

import (
	"fmt"
	"time"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"github.com/PolarWolf314/echo-journal/internal/journal"
	logger "github.com/PolarWolf314/echo-journal/internal/logging"
	"github.com/PolarWolf314/echo-journal/internal/secrets"
)

// Options configures a session.
type Options struct {
	// Root is the journal root directory.
	Root string

	// NoteFile is the per-day note file name.
	NoteFile string

	// ID identifies the session in the audit log.
	ID string

	// Clock overrides time.Now for the note controller.
	Clock func() time.Time

	Logger logger.Logger
}

// Session owns everything that exists only while the journal is unlocked:
// the derived key, the note controller, and the plaintext state of the tree.
//
// Open decrypts the journal; Close re-encrypts it. Close runs the encryption
// once; later calls return the first summary.
type Session struct {
	id    string
	root  string
	key   secrets.Key
	notes *journal.Controller
	log   logger.Logger

	opened  secrets.Summary
	closed  bool
	sealing secrets.Summary
}

// Open decrypts every file under opts.Root with key and returns the session.
// Files that do not decrypt are left as they are and reported in the summary.
func Open(key secrets.Key, opts Options) (*Session, error) {
	if key.IsZero() {
		return nil, fmt.Errorf("%w: no key", eerrors.ErrAuthFailure)
	}

	var ctrlOpts []journal.Option
	if opts.Clock != nil {
		ctrlOpts = append(ctrlOpts, journal.WithClock(opts.Clock))
	}

	s := &Session{
		id:    opts.ID,
		root:  opts.Root,
		key:   key,
		notes: journal.NewController(opts.Root, opts.NoteFile, ctrlOpts...),
		log:   opts.Logger,
	}

	s.log.Debugf("Decrypting journal at %s", s.root)
	s.opened = secrets.DecryptTree(s.root, s.key)
	s.report("decrypt", s.opened)

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Root returns the journal root.
func (s *Session) Root() string { return s.root }

// Notes returns the note controller. It returns nil once the session is closed.
func (s *Session) Notes() *journal.Controller {
	if s.closed {
		return nil
	}
	return s.notes
}

// Opened returns the summary of the decryption done by Open.
func (s *Session) Opened() secrets.Summary { return s.opened }

// Closed reports whether Close has run.
func (s *Session) Closed() bool { return s.closed }

// Close re-encrypts the journal. Only the first call touches the disk.
func (s *Session) Close() secrets.Summary {
	if s.closed {
		return s.sealing
	}
	s.closed = true

	s.log.Debugf("Encrypting journal at %s", s.root)
	s.sealing = secrets.EncryptTree(s.root, s.key)
	s.report("encrypt", s.sealing)

	s.key = secrets.Key{}
	return s.sealing
}

// OpenToday opens today's note, see journal.Controller.OpenToday.
func (s *Session) OpenToday() (*journal.Note, error) {
	if s.closed {
		return nil, eerrors.ErrSessionClosed
	}
	return s.notes.OpenToday()
}

// OpenOther opens a note read-only, see journal.Controller.OpenOther.
func (s *Session) OpenOther(path string) (*journal.Note, error) {
	if s.closed {
		return nil, eerrors.ErrSessionClosed
	}
	return s.notes.OpenOther(path)
}

// OpenDate opens the note of t's day read-only, see journal.Controller.OpenDate.
func (s *Session) OpenDate(t time.Time) (*journal.Note, error) {
	if s.closed {
		return nil, eerrors.ErrSessionClosed
	}
	return s.notes.OpenDate(t)
}

// Save saves note, see journal.Controller.Save.
func (s *Session) Save(note *journal.Note, content string) error {
	if s.closed {
		return eerrors.ErrSessionClosed
	}
	return s.notes.Save(note, content)
}

func (s *Session) report(op string, summary secrets.Summary) {
	for _, r := range summary.Results {
		switch r.Outcome {
		case secrets.OutcomeSkipped:
			s.log.Debugf("%s: skipped %s: %s", op, r.Path, r.Reason)
		case secrets.OutcomeFailed:
			s.log.WarnfAlways("%s: could not process %s: %v", op, r.Path, r.Err)
		default:
			s.log.Debugf("%s: %s %s", op, r.Outcome, r.Path)
		}
	}
	s.log.Infof("%s: %d changed, %d skipped, %d failed", op,
		summary.Count(secrets.OutcomeEncrypted)+summary.Count(secrets.OutcomeDecrypted),
		summary.Count(secrets.OutcomeSkipped),
		summary.Count(secrets.OutcomeFailed))
}
