package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandBytes(t *testing.T) {
	t.Parallel()
	a, err := RandBytes(32)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("len=%d, want 32", len(a))
	}
	b, _ := RandBytes(32)
	if bytes.Equal(a, b) {
		t.Fatal("RandBytes produced equal slices")
	}
}

func TestHashVerifyPassphrase(t *testing.T) {
	t.Parallel()
	salt := []byte("0123456789abcdef")
	hash := HashPassphrase([]byte("secret"), salt)

	if !VerifyPassphrase([]byte("secret"), salt, hash) {
		t.Fatal("correct passphrase must verify")
	}
	if VerifyPassphrase([]byte("wrong"), salt, hash) {
		t.Fatal("wrong passphrase must not verify")
	}
	if VerifyPassphrase([]byte("secret"), []byte("fedcba9876543210"), hash) {
		t.Fatal("wrong salt must not verify")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	t.Parallel()
	salt := []byte("0123456789abcdef")
	k1 := DeriveKey([]byte("pw"), salt)
	k2 := DeriveKey([]byte("pw"), salt)
	if !bytes.Equal(k1, k2) {
		t.Fatal("DeriveKey not deterministic")
	}
	if len(k1) != KeyLen {
		t.Fatalf("len=%d, want %d", len(k1), KeyLen)
	}
	if bytes.Equal(k1, DeriveKey([]byte("other"), salt)) {
		t.Fatal("DeriveKey must change with passphrase")
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	t.Parallel()
	key := DeriveKey([]byte("pw"), []byte("0123456789abcdef"))
	c, err := NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	opaque, err := c.Encrypt("hunter2")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if strings.Contains(opaque, "hunter2") {
		t.Fatal("opaque form must not contain the plaintext")
	}

	got, err := c.Decrypt(opaque)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("Decrypt=%q", got)
	}

	// same plaintext, fresh nonce
	again, _ := c.Encrypt("hunter2")
	if again == opaque {
		t.Fatal("two encryptions must differ")
	}
}

func TestCipher_DecryptRejectsBadInput(t *testing.T) {
	t.Parallel()
	c, err := NewCipher(DeriveKey([]byte("pw"), []byte("0123456789abcdef")))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	if _, err := c.Decrypt("%%%not-base64"); err == nil {
		t.Fatal("want error for invalid base64")
	}
	if _, err := c.Decrypt("c2hvcnQ="); err == nil {
		t.Fatal("want error for truncated ciphertext")
	}

	opaque, _ := c.Encrypt("x")
	other, _ := NewCipher(DeriveKey([]byte("other"), []byte("0123456789abcdef")))
	if _, err := other.Decrypt(opaque); err == nil {
		t.Fatal("want error for wrong key")
	}
}

func TestNewCipher_BadKeyLength(t *testing.T) {
	t.Parallel()
	if _, err := NewCipher([]byte("short")); err == nil {
		t.Fatal("want error for short key")
	}
}
