// Package store implements the PostgreSQL persistence layer of calhub:
// the event cache, the per-user settings rows that hold calendar
// configurations, per-calendar sync state, and the encrypted secret rows.
//
// Every operation is partitioned by user id (and calendar id or key where
// applicable); no query ever crosses a user boundary.
package store

import (
	"context"
	"time"

	"calhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CalendarRecord is the row inserted into the calendars table so cached
// events and sync state have a foreign-key anchor.
type CalendarRecord struct {
	ID         string
	Name       string
	Type       string
	ConfigBlob string
	IsActive   bool
}

// EventRepository is the event cache: cached provider events plus the
// per-calendar sync-state markers.
type EventRepository interface {
	// SaveMany bulk-upserts events keyed by (id, calendar_id, user_id).
	// Saving the same event twice leaves one row with the latest field
	// values. An empty slice is a no-op, not an error.
	SaveMany(ctx context.Context, userID int64, events []models.CalendarEvent) error

	// FindByRange returns all events whose interval intersects the window
	// (start_time <= window.End AND end_time >= window.Start), ordered by
	// start time ascending. Overlap, not containment: a multi-day event
	// spanning the whole window is included.
	FindByRange(ctx context.Context, userID int64, window models.TimeRange) ([]models.CalendarEvent, error)

	// FindByCalendarID returns all cached events of one calendar, ordered
	// by start time ascending.
	FindByCalendarID(ctx context.Context, userID int64, calendarID string) ([]models.CalendarEvent, error)

	// DeleteByCalendar removes every cached event of one calendar.
	DeleteByCalendar(ctx context.Context, userID int64, calendarID string) error

	// EnsureCalendarRecord inserts the calendar row if absent and never
	// overwrites an existing one (events carry a foreign key to it, so
	// the insert must be idempotent).
	EnsureCalendarRecord(ctx context.Context, userID int64, record CalendarRecord) error

	// DeleteCalendarRecord removes the calendar row; cached events cascade
	// via the foreign key.
	DeleteCalendarRecord(ctx context.Context, userID int64, calendarID string) error

	// GetLastSyncTime returns the last successful sync instant of one
	// calendar, or nil when the calendar has never synced.
	GetLastSyncTime(ctx context.Context, userID int64, calendarID string) (*time.Time, error)

	// UpdateLastSyncTime upserts the sync-state row for one calendar.
	UpdateLastSyncTime(ctx context.Context, userID int64, calendarID string, syncedAt time.Time) error

	// DeleteSyncState removes the sync-state row for one calendar.
	DeleteSyncState(ctx context.Context, userID int64, calendarID string) error
}

// SettingsRepository stores per-user key/value settings. Calendar
// configurations live here as individually keyed rows, so mutating one
// calendar never rewrites its siblings.
type SettingsRepository interface {
	// Get returns the value under key, or [ErrSettingNotFound].
	Get(ctx context.Context, userID int64, key string) (string, error)

	// Set upserts the value under key. Last write wins.
	Set(ctx context.Context, userID int64, key, value string) error

	// Delete removes the row. Deleting an absent key is not an error.
	Delete(ctx context.Context, userID int64, key string) error

	// ListByPrefix returns all of the user's settings whose key starts
	// with prefix, as a key → value map.
	ListByPrefix(ctx context.Context, userID int64, prefix string) (map[string]string, error)

	// ListUserIDs returns the distinct user ids that own at least one
	// setting row with the given key prefix. Used by the background sync
	// worker to enumerate users with registered calendars.
	ListUserIDs(ctx context.Context, prefix string) ([]int64, error)
}

// SecretRepository stores ciphertext blobs keyed by (user_id, key). Only
// ciphertext crosses this boundary; encryption happens a layer above.
type SecretRepository interface {
	// Get returns the ciphertext under key, or [ErrSecretNotFound].
	Get(ctx context.Context, userID int64, key string) (string, error)

	// Set upserts the ciphertext under key.
	Set(ctx context.Context, userID int64, key, ciphertext string) error

	// Delete removes the row. Deleting an absent key is not an error.
	Delete(ctx context.Context, userID int64, key string) error

	// Exists reports whether a row is present without returning it.
	Exists(ctx context.Context, userID int64, key string) (bool, error)
}
