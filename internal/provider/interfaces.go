// Package provider implements the calendar provider adapters: the Google
// Calendar API client and the ICS feed client. An adapter is constructed
// per calendar configuration by the [Factory] and normalizes provider
// payloads into the shared event model; credentials are injected, never
// read from the process environment.
package provider

import (
	"context"

	"calhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// Provider fetches calendar data from one upstream source. Implementations
// are scoped to a single configured calendar and bound to the credentials
// resolved at construction time.
type Provider interface {
	// ListCalendars enumerates the calendars available behind this
	// provider. For Google this is the account's calendar list; for an ICS
	// feed it is the feed itself.
	ListCalendars(ctx context.Context) ([]models.ProviderCalendar, error)

	// GetEvents returns all event instances intersecting the window,
	// normalized into the shared model. Recurring events are expanded into
	// concrete instances; instances outside the window are dropped.
	GetEvents(ctx context.Context, window models.TimeRange) ([]models.CalendarEvent, error)
}
