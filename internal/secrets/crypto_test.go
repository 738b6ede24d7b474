package secrets

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Failed to decode hex: %v", err)
	}
	return b
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey("4821")
	inputs := [][]byte{
		[]byte(""),
		[]byte("hello"),
		[]byte("line one\nline two\n"),
		{0x00, 0xff, 0x80, 0x0a},
		bytes.Repeat([]byte("a"), 64*1024),
	}

	for _, in := range inputs {
		token, err := Seal(key, in)
		if err != nil {
			t.Fatalf("Seal failed: %v", err)
		}
		out, err := Open(key, token)
		if err != nil {
			t.Fatalf("Open failed for %d-byte input: %v", len(in), err)
		}
		if !bytes.Equal(in, out) {
			t.Errorf("Round trip mismatch for %d-byte input", len(in))
		}
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	key := DeriveKey("4821")
	a, err := Seal(key, []byte("same"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	b, err := Seal(key, []byte("same"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("Expected two seals of the same plaintext to differ")
	}
}

func TestOpen_Plaintext(t *testing.T) {
	key := DeriveKey("4821")
	for _, in := range []string{"hello", "", "abcd", "dear diary, today was fine"} {
		if _, err := Open(key, []byte(in)); !errors.Is(err, ErrNotAToken) {
			t.Errorf("Open(%q) = %v, expected ErrNotAToken", in, err)
		}
	}
}

func TestOpen_WrongKey(t *testing.T) {
	token, err := Seal(DeriveKey("1111"), []byte("secret"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if _, err := Open(DeriveKey("2222"), token); !errors.Is(err, ErrTokenRejected) {
		t.Errorf("Expected ErrTokenRejected, got %v", err)
	}
}

func TestOpen_Tampered(t *testing.T) {
	key := DeriveKey("1111")
	token, err := Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	box := make([]byte, tokenEncoding.DecodedLen(len(token)))
	n, err := tokenEncoding.Decode(box, token)
	if err != nil {
		t.Fatalf("Failed to decode token: %v", err)
	}
	box = box[:n]
	box[len(box)-1] ^= 0x01

	tampered := make([]byte, tokenEncoding.EncodedLen(len(box)))
	tokenEncoding.Encode(tampered, box)

	if _, err := Open(key, tampered); !errors.Is(err, ErrTokenRejected) {
		t.Errorf("Expected ErrTokenRejected for tampered token, got %v", err)
	}
}

func TestIsSealed(t *testing.T) {
	key := DeriveKey("1111")
	token, err := Seal(key, []byte("x"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if !IsSealed(key, token) {
		t.Error("Expected token to be sealed under its key")
	}
	if IsSealed(DeriveKey("9999"), token) {
		t.Error("Expected token not to be sealed under another key")
	}
	if IsSealed(key, []byte("x")) {
		t.Error("Expected plaintext not to be sealed")
	}
}

func TestLooksSealed(t *testing.T) {
	token, err := Seal(DeriveKey("1111"), []byte("dear diary"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if !LooksSealed(token) {
		t.Error("Expected a token to look sealed")
	}
	if LooksSealed([]byte("dear diary, today was long.")) {
		t.Error("Expected prose not to look sealed")
	}
	if LooksSealed(nil) {
		t.Error("Expected empty data not to look sealed")
	}
}
