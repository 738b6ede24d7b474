package journal

import "time"

// State is where a note is in its lifecycle.
type State string

const (
	// StateWritable is today's note before it has been saved.
	StateWritable State = "writable"

	// StateReadOnly is a loaded note that may not be edited.
	StateReadOnly State = "read-only"

	// StateSaved is a note saved in this session. It is read-only too.
	StateSaved State = "saved"
)

// Why a note is read-only.
const (
	LockExisting  = "today's entry was already written"
	LockPastDay   = "entries from other days are read-only"
	LockBrowsing  = "the journal is read-only after browsing past entries"
	LockForfeited = "another entry was opened before this one was saved"
	LockSaved     = "saved entries cannot be edited"
)

// Note is one day's journal entry as held by a Controller.
type Note struct {
	Path    string
	Date    time.Time
	Content string

	state      State
	lockReason string
}

// State returns the lifecycle state.
func (n *Note) State() State { return n.state }

// Writable reports whether the note still accepts a save.
func (n *Note) Writable() bool { return n.state == StateWritable }

// LockReason explains why the note is read-only. Empty while writable.
func (n *Note) LockReason() string { return n.lockReason }

func (n *Note) lock(state State, reason string) {
	n.state = state
	n.lockReason = reason
}
