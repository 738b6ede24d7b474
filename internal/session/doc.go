// Package session ties the pin-derived key to one run of the journal.
//
// A Session is created after the pin is verified, decrypts the journal tree on
// Open, hands out notes through its controller, and re-encrypts the tree on
// Close. The key is held only by the session and cleared on Close.
package session
