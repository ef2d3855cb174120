// Package biztime provides time utilities for warranty date arithmetic.
// All storage and transport use UTC. Calendar dates (purchase date, received
// date) are represented as UTC midnight; implicit Local timezone is
// prohibited.
package biztime

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current calendar date as UTC midnight.
func Today() time.Time {
	return TruncateToDate(NowUTC())
}

// TruncateToDate drops the time-of-day component, keeping UTC midnight.
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date string (YYYY-MM-DD) as UTC midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a time as a calendar date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// EndOfDay returns the last second of the given calendar date in UTC.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 0, time.UTC)
}

// AddMonthsClamped advances a date by the given number of calendar months,
// clamping to the last valid day of the target month instead of rolling
// over (Jan 31 + 1 month is Feb 28/29, never Mar 2).
func AddMonthsClamped(t time.Time, months int) time.Time {
	u := t.UTC()
	year, month, day := u.Year(), int(u.Month()), u.Day()

	month += months
	year += (month - 1) / 12
	month = (month-1)%12 + 1
	if month < 1 {
		month += 12
		year--
	}

	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
