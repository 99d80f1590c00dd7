package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD calendar date format.
const DateLayout = "2006-01-02"

// Today returns the current UTC calendar day at midnight.
func Today(c Clock) time.Time {
	return StartOfDay(c.Now().UTC())
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysFromToday returns the date n days after today.
func DaysFromToday(c Clock, n int) string {
	return FormatDate(Today(c).AddDate(0, 0, n))
}

// MonthsFromToday returns the date n months after today. Overflowing days
// roll into the following month, so Jan 31 plus one month is Mar 3 (or Mar 2 in leap years).
func MonthsFromToday(c Clock, n int) string {
	return FormatDate(Today(c).AddDate(0, n, 0))
}
