package service

import "errors"

var (
	// ErrCalendarNotFound is returned when no calendar configuration
	// exists under the requested id.
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrCalendarExists is returned by Add when the id is already taken.
	ErrCalendarExists = errors.New("calendar already exists")

	// ErrInvalidRange is returned by range queries whose end precedes
	// their start.
	ErrInvalidRange = errors.New("invalid time range")
)
