package entities

import "time"

// OverrideStatus is the staff-set exception state for a calendar date.
//
//   - open:   force-enables a date that would otherwise sit inside the
//     advance-notice buffer or on a normally-closed weekday
//   - away / closed: force-disables the date regardless of other rules

type OverrideStatus string

const (
	OverrideStatusOpen   OverrideStatus = "open"
	OverrideStatusAway   OverrideStatus = "away"
	OverrideStatusClosed OverrideStatus = "closed"
)

func (s OverrideStatus) Valid() bool {
	return s == OverrideStatusOpen || s == OverrideStatusAway || s == OverrideStatusClosed
}

// CalendarOverride is the per-date exception record.
//
// Storage model (DynamoDB):
//   - PK: date ("2006-01-02")
//
// Capacity, when present, replaces the default per-day capacity. Overrides
// never expire automatically and are read-only to the availability engine.

type CalendarOverride struct {
	Date      string         `json:"date"`
	Status    OverrideStatus `json:"status"`
	Capacity  *int           `json:"capacity,omitempty"`
	Note      string         `json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
