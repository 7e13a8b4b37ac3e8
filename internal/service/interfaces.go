// Package service implements the application core: calendar
// configuration management, the sync orchestrator, the cached-event
// query service, and Google token handling. Services speak to storage
// and providers only through interfaces so every path is testable.
package service

import (
	"context"

	"calhub/internal/provider"
	"calhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CalendarService manages the per-user calendar configurations.
type CalendarService interface {
	// List returns every configured calendar of the user, enabled or not,
	// ordered by name.
	List(ctx context.Context, userID int64) ([]models.CalendarConfig, error)

	// Get returns one calendar configuration, or [ErrCalendarNotFound].
	Get(ctx context.Context, userID int64, calendarID string) (models.CalendarConfig, error)

	// Add validates and stores a new calendar configuration. A missing id
	// is assigned; new calendars start enabled. Returns
	// [ErrCalendarExists] when the id is already taken.
	Add(ctx context.Context, userID int64, cfg models.CalendarConfig) (models.CalendarConfig, error)

	// SetEnabled flips one calendar's enabled flag without touching its
	// siblings and returns the updated configuration.
	SetEnabled(ctx context.Context, userID int64, calendarID string, enabled bool) (models.CalendarConfig, error)

	// Delete removes the calendar configuration together with its cached
	// events and sync state.
	Delete(ctx context.Context, userID int64, calendarID string) error
}

// SyncService runs provider fetches and refreshes the event cache.
type SyncService interface {
	// SyncAll syncs every enabled calendar of the user concurrently. One
	// calendar's failure never aborts the others; per-calendar errors are
	// collected in the result. The returned error is reserved for
	// failures before fan-out, such as being unable to load the
	// configurations at all.
	SyncAll(ctx context.Context, userID int64) (models.SyncAllResult, error)

	// SyncCalendar syncs a single calendar regardless of its enabled
	// flag.
	SyncCalendar(ctx context.Context, userID int64, calendarID string) (models.SyncResult, error)
}

// QueryService reads the event cache. It never talks to providers, so
// queries answer fast and work offline.
type QueryService interface {
	// EventsForToday returns cached events overlapping the current day in
	// the product timezone.
	EventsForToday(ctx context.Context, userID int64) ([]models.CalendarEvent, error)

	// EventsForWeek returns cached events overlapping the next seven days
	// starting at today's midnight in the product timezone.
	EventsForWeek(ctx context.Context, userID int64) ([]models.CalendarEvent, error)

	// EventsForRange returns cached events overlapping an arbitrary
	// window. Returns [ErrInvalidRange] when the window end precedes its
	// start.
	EventsForRange(ctx context.Context, userID int64, window models.TimeRange) ([]models.CalendarEvent, error)
}

// TokenService manages the stored Google OAuth token sets.
type TokenService interface {
	// StoreGoogleTokens encrypts and stores the token set for one
	// account.
	StoreGoogleTokens(ctx context.Context, userID int64, accountEmail string, tokens models.OAuthTokens) error

	// LoadGoogleTokens returns the stored token set, or
	// [secrets.ErrNotFound] when the account was never connected.
	LoadGoogleTokens(ctx context.Context, userID int64, accountEmail string) (models.OAuthTokens, error)

	// DeleteGoogleTokens disconnects the account.
	DeleteGoogleTokens(ctx context.Context, userID int64, accountEmail string) error

	// HasGoogleTokens reports whether the account is connected.
	HasGoogleTokens(ctx context.Context, userID int64, accountEmail string) (bool, error)
}

// ProviderFactory builds the provider adapter for one calendar
// configuration. Implemented by [provider.Factory].
type ProviderFactory interface {
	ForConfig(ctx context.Context, userID int64, cfg models.CalendarConfig) (provider.Provider, error)
}
