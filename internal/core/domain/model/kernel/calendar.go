package kernel

import "time"

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDate returns the calendar date of t, as read in t's own location,
// at midnight UTC. Dates taken from different locations compare by their
// calendar day rather than by instant.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameMonthDay reports whether both instants fall on the same calendar month and day,
// ignoring the year. February 29 only matches February 29.
func SameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}
