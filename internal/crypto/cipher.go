package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the AEAD key from the configured
// passphrase, following the OWASP recommendation: 1 iteration, 64 MiB,
// 4 threads, 256-bit output.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// secretCipher is the AES-256-GCM implementation of [Cipher].
type secretCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher derives a 256-bit key from passphrase and salt with
// Argon2id and returns a [Cipher] around AES-256-GCM. The derivation runs
// once; per-call work is a nonce read plus one AEAD operation.
//
// Returns [ErrKeyMaterial] when passphrase or salt is empty.
func NewSecretCipher(passphrase, salt string) (Cipher, error) {
	if passphrase == "" || salt == "" {
		return nil, ErrKeyMaterial
	}

	key := argon2.IDKey([]byte(passphrase), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyMaterial, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyMaterial, err)
	}

	return &secretCipher{aead: aead}, nil
}

// Encrypt implements [Cipher]. The random 12-byte nonce is prepended to
// the ciphertext so Decrypt can split it out: blob = nonce ‖ ciphertext.
func (c *secretCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [Cipher]. An authentication-tag mismatch almost
// always means the ciphertext was altered or the server key changed.
func (c *secretCipher) Decrypt(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrDecryptionFailed)
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
