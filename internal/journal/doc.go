// Package journal implements the note lifecycle of an Echo session.
//
// Notes live at <root>/<year>/<Mon>/<day>/<note file>, one per day:
//
//	~/Echo/2026/Oct/19/journal.txt
//
// A Controller tracks the current note and its state:
//
//	no note -> writable -> saved (read-only)
//	no note -> read-only (existing entry, another day, or browsing)
//
// Today's note is writable only while it has never been written. Saving locks
// it. Opening any note through OpenOther locks the whole session: the
// previously current note is forfeited without being saved, and today's note
// reopens read-only until the next session.
//
// FindNotes lists note files by name and never reads their content, so it
// works on an encrypted journal.
package journal
