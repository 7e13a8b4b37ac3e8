// Package secrets implements the secret store: named per-user secrets
// (OAuth tokens, feed credentials) encrypted at rest with the server
// cipher. Values pass through this package as plaintext and are sealed
// before they reach the database.
package secrets

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secrets_mock.go -package=mock

// Store reads and writes named secrets for one user.
type Store interface {
	// Get returns the decrypted value under key. Returns [ErrNotFound]
	// when no secret is stored under key; a [crypto.ErrDecryptionFailed]
	// from the cipher is passed through unchanged so callers can tell a
	// missing secret from an unreadable one.
	Get(ctx context.Context, userID int64, key string) (string, error)

	// Set encrypts value and upserts it under key.
	Set(ctx context.Context, userID int64, key, value string) error

	// Delete removes the secret. Deleting an absent key is not an error.
	Delete(ctx context.Context, userID int64, key string) error

	// Exists reports whether a secret is stored under key without
	// decrypting it.
	Exists(ctx context.Context, userID int64, key string) (bool, error)
}
