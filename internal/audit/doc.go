// Package audit provides audit trail logging for journal operations.
//
// Every significant operation (unlock, lockout, decrypt, encrypt, save, read,
// seal) is recorded in a per-user audit log. The log never contains note
// content or the pin, only what happened, when, and to which note.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_DATA_HOME/echo/audit.jsonl
//
// falling back to ~/.local/share/echo/audit.jsonl. It lives outside the
// journal root so encrypting the journal never touches it.
//
// # Usage
//
//	entry := audit.LogWithSession(audit.OpSave, sessionID)
//	entry.Note = "2026/Oct/19/journal.txt"
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails the operation continues
// without error.
package audit
