package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Scheduling defaults applied when a preference row carries zero values.
const (
	DefaultSessionMinutes = 60
	DefaultSlotReservePct = 0.2
)

// TimePreferences captures when a learner is willing to study. Times of day
// are minutes from midnight at the scheduling granularity. Weekend bounds are
// ignored when UseWeekdayTimes is set.
type TimePreferences struct {
	UserID          string
	WeekdayStartMin int
	WeekdayEndMin   int
	WeekendStartMin int
	WeekendEndMin   int
	UseWeekdayTimes bool
	SessionMinutes  int
	SlotReservePct  float64
}

// DayBounds returns the earliest/latest study minutes for a weekday index
// (time.Weekday numbering: Sunday = 0).
func (p TimePreferences) DayBounds(weekday int) (startMin, endMin int) {
	if weekday == 0 || weekday == 6 {
		if !p.UseWeekdayTimes {
			return p.WeekendStartMin, p.WeekendEndMin
		}
	}
	return p.WeekdayStartMin, p.WeekdayEndMin
}

// Validate rejects preference rows that cannot produce a usable window.
func (p TimePreferences) Validate() error {
	if p.WeekdayStartMin < 0 || p.WeekdayEndMin > 24*60 || p.WeekdayStartMin >= p.WeekdayEndMin {
		return fmt.Errorf("weekday window %d-%d is invalid", p.WeekdayStartMin, p.WeekdayEndMin)
	}
	if !p.UseWeekdayTimes {
		if p.WeekendStartMin < 0 || p.WeekendEndMin > 24*60 || p.WeekendStartMin >= p.WeekendEndMin {
			return fmt.Errorf("weekend window %d-%d is invalid", p.WeekendStartMin, p.WeekendEndMin)
		}
	}
	if p.SessionMinutes < 0 {
		return fmt.Errorf("session duration %d is invalid", p.SessionMinutes)
	}
	if p.SlotReservePct < 0 || p.SlotReservePct >= 1 {
		return fmt.Errorf("slot reserve %.2f must be in [0,1)", p.SlotReservePct)
	}
	return nil
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
