package models

import "time"

// TimeRange is a half-open [Start, End) window in absolute time.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the event interval [start, end] intersects the
// range. This is an overlap check, not containment: a multi-day event that
// begins before the range and ends after it still overlaps.
func (r TimeRange) Overlaps(start, end time.Time) bool {
	return !start.After(r.End) && !end.Before(r.Start)
}

// IsValid reports whether the range is well-formed (Start before End).
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}
