package crypto

import "errors"

// Sentinel errors returned by the cipher. Match with [errors.Is].
var (
	// ErrKeyMaterial is returned by the constructor when the passphrase or
	// salt is empty. Without key material every secret operation would
	// fail, so construction is refused outright.
	ErrKeyMaterial = errors.New("cipher key material is missing")

	// ErrEncryptionFailed is returned when sealing a plaintext fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when a stored blob cannot be opened:
	// tampered ciphertext, truncated blob, or a key mismatch. Treat as
	// unrecoverable.
	ErrDecryptionFailed = errors.New("decryption failed")
)
