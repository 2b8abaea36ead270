package services

import (
	"fmt"
	"time"
)

const weekStartLayout = "2006-01-02"

// MondayOf returns the Monday of the week containing t, at midnight in
// t's location.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// CurrentWeekStart returns this week's Monday as YYYY-MM-DD, based on
// the server's local calendar date.
func CurrentWeekStart() string {
	return MondayOf(time.Now()).Format(weekStartLayout)
}

// NormalizeWeekStart parses an ISO calendar date and snaps it to the
// Monday of its week. Weeks are keyed by their Monday, never by an
// arbitrary day.
func NormalizeWeekStart(value string) (string, error) {
	parsed, err := time.Parse(weekStartLayout, value)
	if err != nil {
		return "", fmt.Errorf("parsing week start %q: %w", value, err)
	}
	return MondayOf(parsed).Format(weekStartLayout), nil
}
