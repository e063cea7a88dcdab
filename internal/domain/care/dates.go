package care

import (
	"fmt"
	"strings"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

// DateLayout is the wire and storage format of calendar dates
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// StartOfDay normalizes t to midnight of its calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays shifts the calendar day of t by n days. Time of day is dropped.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// DaysBetween returns the signed number of calendar days from a to b.
// Each instant is read as the calendar date it carries, so DST shifts and
// differing zones do not produce fractional days.
func DaysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)) / day)
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateKey renders the calendar day of t as YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", entities.ErrInvalidDate, s)
	}
	return t, nil
}

// civil maps t to UTC midnight of the calendar date it carries
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
