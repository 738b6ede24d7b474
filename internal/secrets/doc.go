// Package secrets provides the cryptographic core of the Echo journal.
//
// # Key Derivation
//
// The journal key is derived from the 4-digit pin: SHA-256 of the pin is
// expanded with HKDF-SHA256 into a 32-byte NaCl secretbox key. The same pin
// always yields the same key, which is what lets a tree encrypted in one
// session decrypt in the next.
//
// # Pin Record
//
// PinStore keeps the hex SHA-256 digest of the pin in a single hidden file and
// verifies entered pins against it. Three failed attempts lock the store for
// the rest of the process.
//
// # Tokens
//
// Every note is stored at rest as base64url(nonce || secretbox(plaintext)),
// with a fresh random 24-byte nonce per seal.
//
// # Bulk Codec
//
// EncryptTree and DecryptTree rewrite every regular file under the journal
// root in place. They never return errors: each file gets a FileResult in the
// Summary. Decryption skips anything that is not a token under the key, which
// makes a first run over plaintext notes work unchanged. EncryptTree seals
// every file, since the tree it gets back from a session is all plaintext;
// EncryptPlaintext skips files already sealed under the key and is used to
// repair an interrupted session. There is no cross-file transaction.
//
// # Security Considerations
//
// A 4-digit pin has ten thousand values and the pin record is an unsalted
// digest, so anyone holding the pin file can recover the pin offline. The
// encryption keeps casual readers out of the journal; it is not meant to
// resist a determined attacker.
package secrets
