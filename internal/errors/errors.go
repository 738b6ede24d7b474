package errors

import "errors"

// Pin errors indicate problems creating or checking the journal pin.
var (
	// ErrInvalidPinFormat indicates the entered pin is not exactly four digits.
	ErrInvalidPinFormat = errors.New("pin must be exactly 4 digits")

	// ErrAuthFailure indicates the entered pin does not match the stored record.
	ErrAuthFailure = errors.New("incorrect pin")

	// ErrTooManyAttempts indicates the pin attempts for this session are used up.
	ErrTooManyAttempts = errors.New("too many incorrect pin attempts")

	// ErrPinNotFound indicates no pin record exists yet.
	ErrPinNotFound = errors.New("pin has not been created")

	// ErrPinAlreadyExists indicates a pin record already exists and cannot be replaced.
	ErrPinAlreadyExists = errors.New("pin has already been created")
)

// Note errors indicate issues with the note lifecycle.
var (
	// ErrNoteReadOnly indicates the note has been saved, browsed past or forfeited.
	ErrNoteReadOnly = errors.New("note is read-only")

	// ErrNoteNotFound indicates the requested note file does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNotANote indicates the path is outside the journal or not a note file.
	ErrNotANote = errors.New("path is not a journal note")

	// ErrInvalidDateFormat indicates a date argument could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Session errors indicate misuse of a journal session.
var (
	// ErrSessionClosed indicates the session has already re-encrypted the journal.
	ErrSessionClosed = errors.New("journal session is closed")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")
)
