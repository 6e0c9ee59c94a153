package crypto

import (
	"crypto/cipher"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeyLen is the cipher key size in bytes.
const KeyLen = chacha20poly1305.KeySize

// DeriveKey derives a cipher key from the passphrase and salt using Argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, KeyLen)
}

// Cipher turns account passwords into opaque text and back. The persistence
// layer only ever sees the opaque form.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher constructs an XChaCha20-Poly1305 cipher from a derived key.
func NewCipher(key []byte) (*Cipher, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals the plaintext with a random nonce and returns base64 text.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce, err := RandBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return "", err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+c.aead.Overhead())
	out = append(out, nonce...)
	out = append(out, c.aead.Seal(nil, nonce, []byte(plaintext), nil)...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt inverts Encrypt.
func (c *Cipher) Decrypt(opaque string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return "", err
	}
	if len(raw) < chacha20poly1305.NonceSizeX {
		return "", errors.New("ciphertext too short")
	}
	nonce := raw[:chacha20poly1305.NonceSizeX]
	ct := raw[chacha20poly1305.NonceSizeX:]
	pt, err := c.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}
