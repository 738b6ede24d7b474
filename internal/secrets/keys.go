package secrets

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	eerrors "github.com/PolarWolf314/echo-journal/internal/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	// PinLength is the exact number of digits in a journal pin.
	PinLength = 4

	// KeySize is the secretbox key size.
	KeySize = 32

	keyInfo = "echo journal secretbox key v1"
)

// Key is the symmetric key derived from a pin. It only ever lives in memory.
type Key struct {
	b [KeySize]byte
}

// ValidatePin checks that pin is exactly PinLength ASCII digits.
func ValidatePin(pin string) error {
	if len(pin) != PinLength {
		return fmt.Errorf("%w: got %d characters", eerrors.ErrInvalidPinFormat, len(pin))
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fmt.Errorf("%w: contains non-digit characters", eerrors.ErrInvalidPinFormat)
		}
	}
	return nil
}

// HashPin returns the hex SHA-256 digest stored in the pin file.
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// DeriveKey deterministically derives the journal key from a validated pin.
//
// The SHA-256 digest of the pin is expanded with HKDF-SHA256 so that the key
// differs from the digest persisted in the pin file.
func DeriveKey(pin string) Key {
	digest := sha256.Sum256([]byte(pin))

	var key Key
	r := hkdf.New(sha256.New, digest[:], nil, []byte(keyInfo))
	if _, err := io.ReadFull(r, key.b[:]); err != nil {
		// hkdf only fails past 255 hash lengths of output.
		panic(fmt.Sprintf("deriving journal key: %v", err))
	}
	return key
}

// Equal reports whether two keys are identical, in constant time.
func (k Key) Equal(other Key) bool {
	return subtle.ConstantTimeCompare(k.b[:], other.b[:]) == 1
}

// IsZero reports whether k was never derived.
func (k Key) IsZero() bool {
	return k.Equal(Key{})
}
