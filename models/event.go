package models

import "time"

// EventSource describes where a cached event came from.
type EventSource struct {
	Type         CalendarType `json:"type"`
	Name         string       `json:"name"`
	AccountEmail string       `json:"accountEmail,omitempty"`
}

// CalendarEvent is one concrete occurrence fetched from a provider.
// Recurring events are expanded before they reach this type; a
// CalendarEvent never carries an unexpanded recurrence rule.
//
// The event ID is provider-scoped and only unique together with
// CalendarID and the owning user. Events are overwritten wholesale on
// every sync, never partially updated.
type CalendarEvent struct {
	ID          string      `json:"id"`
	CalendarID  string      `json:"calendarId"`
	Title       string      `json:"title"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	AllDay      bool        `json:"allDay"`
	Location    string      `json:"location,omitempty"`
	Description string      `json:"description,omitempty"`
	Source      EventSource `json:"source"`
}

// ProviderCalendar is a calendar as listed by a provider, before the user
// has registered it locally.
type ProviderCalendar struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Primary bool   `json:"primary,omitempty"`
}
