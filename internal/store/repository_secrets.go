package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"calhub/internal/logger"
	"calhub/internal/metrics"
)

// likePrefix turns a literal key prefix into a LIKE pattern, escaping the
// LIKE metacharacters so keys containing "_" or "%" match literally.
func likePrefix(prefix string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(prefix) + "%"
}

// secretRepository is the PostgreSQL-backed implementation of
// [SecretRepository]. Rows hold ciphertext only; plaintext never reaches
// this layer.
type secretRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecretRepository constructs a [SecretRepository] backed by the given
// database connection and fallback logger.
func NewSecretRepository(db *DB, log *logger.Logger) SecretRepository {
	return &secretRepository{
		DB:     db,
		logger: log,
	}
}

// Get implements [SecretRepository].
func (s *secretRepository) Get(ctx context.Context, userID int64, key string) (string, error) {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("secrets.get")()

	var ciphertext string
	err := s.DB.QueryRowContext(ctx, getSecretQuery, userID, key).Scan(&ciphertext)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSecretNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.Get").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to query secret")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ciphertext, nil
}

// Set implements [SecretRepository].
func (s *secretRepository) Set(ctx context.Context, userID int64, key, ciphertext string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("secrets.set")()

	if _, err := s.DB.ExecContext(ctx, upsertSecretQuery, userID, key, ciphertext); err != nil {
		log.Err(err).
			Str("func", "secretRepository.Set").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to upsert secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete implements [SecretRepository].
func (s *secretRepository) Delete(ctx context.Context, userID int64, key string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("secrets.delete")()

	if _, err := s.DB.ExecContext(ctx, deleteSecretQuery, userID, key); err != nil {
		log.Err(err).
			Str("func", "secretRepository.Delete").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to delete secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Exists implements [SecretRepository].
func (s *secretRepository) Exists(ctx context.Context, userID int64, key string) (bool, error) {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("secrets.exists")()

	var exists bool
	if err := s.DB.QueryRowContext(ctx, secretExistsQuery, userID, key).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "secretRepository.Exists").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to query secret existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
