package domain

import "time"

// DaysPerWeek is the length of one scheduling cycle.
const DaysPerWeek = 7

// MondayOf truncates an instant to the Monday 00:00 UTC that starts its week.
func MondayOf(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// IsWeekStart reports whether t is exactly a Monday 00:00 UTC.
func IsWeekStart(t time.Time) bool {
	return t.Equal(MondayOf(t))
}

// DayOf truncates an instant to its UTC midnight.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
