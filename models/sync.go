package models

import "time"

// SyncError names one calendar that failed during a batch sync, with a
// human-readable reason.
type SyncError struct {
	CalendarID string `json:"calendarId"`
	Name       string `json:"name"`
	Error      string `json:"error"`
}

// SyncResult reports one successful single-calendar sync.
type SyncResult struct {
	CalendarID string    `json:"calendarId"`
	Name       string    `json:"name"`
	EventCount int       `json:"eventCount"`
	SyncedAt   time.Time `json:"syncedAt"`
}

// SyncAllResult aggregates the outcome of an all-calendar sync run.
// Per-calendar failures are contained here rather than failing the batch;
// the only all-or-nothing failure is an unreadable calendar config list,
// which aborts before any calendar is processed.
type SyncAllResult struct {
	SuccessCount   int         `json:"successCount"`
	TotalCount     int         `json:"totalCount"`
	SyncedAt       time.Time   `json:"syncedAt"`
	ErrorCalendars []SyncError `json:"errorCalendars"`
}
