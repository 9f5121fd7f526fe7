package util

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// StartOfDay normalizes t to UTC midnight. Log dates always pass through
// here before comparison or storage so a habit can never collect two logs
// for the same calendar day across timezones.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay accepts a plain day ("2006-01-02") or an RFC3339 timestamp and
// returns the normalized day.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// DayString formats a normalized day for chart labels and JSON payloads.
func DayString(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
