package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var tokenEncoding = base64.URLEncoding

var (
	// ErrNotAToken indicates the data is not a journal token at all, e.g. plaintext.
	ErrNotAToken = errors.New("data is not an encrypted token")

	// ErrTokenRejected indicates a well-formed token failed authentication
	// under the key: wrong pin or corrupted data.
	ErrTokenRejected = errors.New("token failed authentication")
)

// Seal encrypts plaintext with NaCl secretbox under key and returns a token:
// base64url(nonce || box). A fresh random nonce is used for every call.
func Seal(key Key, plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], plaintext, &nonce, &key.b)

	token := make([]byte, tokenEncoding.EncodedLen(len(box)))
	tokenEncoding.Encode(token, box)
	return token, nil
}

// Open authenticates and decrypts a token produced by Seal.
func Open(key Key, token []byte) ([]byte, error) {
	box := make([]byte, tokenEncoding.DecodedLen(len(token)))
	n, err := tokenEncoding.Decode(box, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAToken, err)
	}
	box = box[:n]

	if len(box) < nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a sealed box", ErrNotAToken, len(box))
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	plaintext, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &key.b)
	if !ok {
		return nil, ErrTokenRejected
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// IsSealed reports whether data is a token that opens under key.
func IsSealed(key Key, data []byte) bool {
	_, err := Open(key, data)
	return err == nil
}

// LooksSealed reports whether data has the shape of a token, without a key.
// Plaintext that happens to be valid base64url of sufficient length also
// matches, so this is only a hint for reporting.
func LooksSealed(data []byte) bool {
	box := make([]byte, tokenEncoding.DecodedLen(len(data)))
	n, err := tokenEncoding.Decode(box, data)
	return err == nil && n >= nonceSize+secretbox.Overhead
}
