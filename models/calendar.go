package models

import "errors"

// CalendarType identifies the upstream source a calendar is synced from.
type CalendarType string

const (
	// CalendarTypeGoogle marks a calendar backed by the Google Calendar API.
	CalendarTypeGoogle CalendarType = "google"

	// CalendarTypeICal marks a calendar backed by a read-only ICS feed URL.
	CalendarTypeICal CalendarType = "ical"
)

// Validation errors returned by [CalendarConfig.Validate]. Match with
// [errors.Is].
var (
	ErrCalendarIDMissing     = errors.New("calendar id is required")
	ErrCalendarNameMissing   = errors.New("calendar name is required")
	ErrUnsupportedType       = errors.New("unsupported calendar type")
	ErrGoogleAccountMissing  = errors.New("google calendar requires an account email")
	ErrGoogleCalendarMissing = errors.New("google calendar requires a provider calendar id")
	ErrICalURLMissing        = errors.New("ical calendar requires a source url")
)

// CalendarConfig is one user-registered calendar. Configs are owned by a
// single user and stored individually keyed by ID, so toggling or deleting
// one calendar never rewrites its siblings.
type CalendarConfig struct {
	// ID is an opaque identifier unique within one user's calendar set.
	ID string `json:"id"`

	// Type selects the provider adapter used during sync.
	Type CalendarType `json:"type"`

	// Name is the user-facing display name of the calendar.
	Name string `json:"name"`

	// Enabled controls whether the calendar participates in sync runs.
	// Disabled calendars keep their cached events but are never fetched.
	Enabled bool `json:"enabled"`

	// Color is an optional display color (e.g. "#4285f4").
	Color string `json:"color,omitempty"`

	// AccountEmail is the linked Google account. Required for google
	// calendars; it doubles as the discriminator of the secret key under
	// which the account's OAuth tokens are stored.
	AccountEmail string `json:"accountEmail,omitempty"`

	// ProviderCalendarID is the calendar identifier within the Google
	// account (e.g. "primary" or an address-form id). Required for google
	// calendars.
	ProviderCalendarID string `json:"providerCalendarId,omitempty"`

	// ICalURL is the HTTPS feed URL. Required for ical calendars.
	ICalURL string `json:"icalUrl,omitempty"`
}

// Validate checks the structural invariants of the config: google calendars
// need both an account email and a provider calendar id, ical calendars need
// a feed URL. Returns the first violated invariant as a sentinel error.
func (c CalendarConfig) Validate() error {
	if c.ID == "" {
		return ErrCalendarIDMissing
	}
	if c.Name == "" {
		return ErrCalendarNameMissing
	}

	switch c.Type {
	case CalendarTypeGoogle:
		if c.AccountEmail == "" {
			return ErrGoogleAccountMissing
		}
		if c.ProviderCalendarID == "" {
			return ErrGoogleCalendarMissing
		}
	case CalendarTypeICal:
		if c.ICalURL == "" {
			return ErrICalURLMissing
		}
	default:
		return ErrUnsupportedType
	}

	return nil
}
