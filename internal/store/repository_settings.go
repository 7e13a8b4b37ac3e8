package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"calhub/internal/logger"
	"calhub/internal/metrics"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository].
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// given database connection and fallback logger.
func NewSettingsRepository(db *DB, log *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: log,
	}
}

// Get implements [SettingsRepository].
func (s *settingsRepository) Get(ctx context.Context, userID int64, key string) (string, error) {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("settings.get")()

	var value string
	err := s.DB.QueryRowContext(ctx, getSettingQuery, userID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to query setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set implements [SettingsRepository]. Last write wins.
func (s *settingsRepository) Set(ctx context.Context, userID int64, key, value string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("settings.set")()

	if _, err := s.DB.ExecContext(ctx, upsertSettingQuery, userID, key, value); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Set").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete implements [SettingsRepository].
func (s *settingsRepository) Delete(ctx context.Context, userID int64, key string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("settings.delete")()

	if _, err := s.DB.ExecContext(ctx, deleteSettingQuery, userID, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to delete setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListByPrefix implements [SettingsRepository]. The prefix is escaped for
// LIKE so config keys containing "_" match literally.
func (s *settingsRepository) ListByPrefix(ctx context.Context, userID int64, prefix string) (map[string]string, error) {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("settings.list_by_prefix")()

	rows, err := s.DB.QueryContext(ctx, listSettingsByPrefixQuery, userID, likePrefix(prefix))
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.ListByPrefix").
			Int64("user_id", userID).
			Str("prefix", prefix).
			Msg("failed to list settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make(map[string]string)

	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "settingsRepository.ListByPrefix").
				Int64("user_id", userID).
				Msg("failed to scan setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results[key] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "settingsRepository.ListByPrefix").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// ListUserIDs implements [SettingsRepository].
func (s *settingsRepository) ListUserIDs(ctx context.Context, prefix string) ([]int64, error) {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("settings.list_user_ids")()

	rows, err := s.DB.QueryContext(ctx, listSettingUserIDsQuery, likePrefix(prefix))
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.ListUserIDs").
			Str("prefix", prefix).
			Msg("failed to list setting user ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var userIDs []int64

	for rows.Next() {
		var userID int64
		if scanErr := rows.Scan(&userID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "settingsRepository.ListUserIDs").
				Msg("failed to scan user id row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		userIDs = append(userIDs, userID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "settingsRepository.ListUserIDs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return userIDs, nil
}
