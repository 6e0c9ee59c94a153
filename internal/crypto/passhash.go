// Package crypto implements passphrase hashing and the password cipher used by
// the authentication gate and the encryption provider.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for interactive unlock on a single device).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
)

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// HashPassphrase returns the Argon2id hash of passphrase using the provided salt.
func HashPassphrase(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassphrase verifies passphrase against the expected hash and salt.
func VerifyPassphrase(passphrase, salt, expected []byte) bool {
	got := HashPassphrase(passphrase, salt)
	return subtle.ConstantTimeCompare(got, expected) == 1
}
