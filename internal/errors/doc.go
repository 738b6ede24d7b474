// Package errors provides typed error values for the Echo journal.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Pin errors: format, mismatch and lockout (ErrInvalidPinFormat, ErrAuthFailure, ErrTooManyAttempts)
//   - Note errors: lifecycle violations (ErrNoteReadOnly, ErrNoteNotFound, ErrNotANote)
//   - Session errors: use after the journal was re-encrypted (ErrSessionClosed)
//   - File errors: discovery issues (ErrNoFilesFound)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("verifying pin: %w", errors.ErrAuthFailure)
//
// Handle errors in the CLI layer:
//
//	res, err := workflows.Unlock(ctx, opts)
//	if errors.Is(err, eerrors.ErrTooManyAttempts) {
//	    // exit without granting access
//	}
//
// Per-file encryption and decryption failures are deliberately not errors:
// they are reported through secrets.Summary instead.
package errors
