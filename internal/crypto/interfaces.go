// Package crypto implements the secret-store cipher: authenticated
// encryption of per-user credential blobs with a server-held key.
//
// The AEAD key never leaves this package. It is derived once at
// construction from an operator-provided passphrase and salt using
// Argon2id, then used with AES-256-GCM. Every Encrypt call draws a fresh
// random nonce, so encrypting the same plaintext twice yields different
// blobs.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher seals and opens secret values for storage at rest.
type Cipher interface {
	// Encrypt seals plaintext and returns a self-contained base64 blob
	// (nonce ‖ ciphertext ‖ tag). Returns [ErrEncryptionFailed] if sealing
	// fails.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a blob produced by Encrypt. Returns
	// [ErrDecryptionFailed] when the blob is malformed, was tampered with,
	// or was sealed under a different key. Callers must not conflate that
	// with "secret not found": a decryption failure is unrecoverable and
	// must never be retried silently.
	Decrypt(blob string) (string, error)
}
