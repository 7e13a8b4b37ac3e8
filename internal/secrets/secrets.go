package secrets

import (
	"context"
	"errors"
	"fmt"

	"calhub/internal/crypto"
	"calhub/internal/logger"
	"calhub/internal/store"
)

// googleTokenKeyPrefix namespaces Google OAuth token blobs inside the
// secret store so they never collide with other secret kinds.
const googleTokenKeyPrefix = "google-oauth:"

// GoogleTokenKey returns the secret-store key under which the OAuth
// token blob for one Google account is kept.
func GoogleTokenKey(accountEmail string) string {
	return googleTokenKeyPrefix + accountEmail
}

// secretStore implements [Store] over an encrypted repository row.
type secretStore struct {
	repo   store.SecretRepository
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewStore constructs the secret store from its repository and cipher.
func NewStore(repo store.SecretRepository, cipher crypto.Cipher, log *logger.Logger) Store {
	return &secretStore{
		repo:   repo,
		cipher: cipher,
		logger: log,
	}
}

// Get implements [Store].
func (s *secretStore) Get(ctx context.Context, userID int64, key string) (string, error) {
	log := logger.FromContext(ctx)

	ciphertext, err := s.repo.Get(ctx, userID, key)
	if errors.Is(err, store.ErrSecretNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load secret: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(ciphertext)
	if err != nil {
		log.Err(err).
			Str("func", "secretStore.Get").
			Int64("user_id", userID).
			Str("key", key).
			Msg("stored secret could not be decrypted")
		return "", err
	}

	return plaintext, nil
}

// Set implements [Store].
func (s *secretStore) Set(ctx context.Context, userID int64, key, value string) error {
	log := logger.FromContext(ctx)

	ciphertext, err := s.cipher.Encrypt(value)
	if err != nil {
		log.Err(err).
			Str("func", "secretStore.Set").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to encrypt secret")
		return err
	}

	if err := s.repo.Set(ctx, userID, key, ciphertext); err != nil {
		return fmt.Errorf("store secret: %w", err)
	}

	return nil
}

// Delete implements [Store].
func (s *secretStore) Delete(ctx context.Context, userID int64, key string) error {
	if err := s.repo.Delete(ctx, userID, key); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}
	return nil
}

// Exists implements [Store].
func (s *secretStore) Exists(ctx context.Context, userID int64, key string) (bool, error) {
	exists, err := s.repo.Exists(ctx, userID, key)
	if err != nil {
		return false, fmt.Errorf("check secret: %w", err)
	}
	return exists, nil
}
