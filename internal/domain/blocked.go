package domain

import "time"

// BlockedInterval is a concrete span of time unavailable for scheduling,
// either a one-off commitment or one day's expansion of a recurring one.
type BlockedInterval struct {
	Start   time.Time
	End     time.Time
	Source  BlockSource
	Label   string
	EventID string
}

// Valid reports whether the interval has positive length.
func (b BlockedInterval) Valid() bool {
	return b.End.After(b.Start)
}

// Commitment is a recurring obligation. It repeats on the weekdays in its
// mask, at the same time of day, for every date inside its active range.
type Commitment struct {
	ID          string
	UserID      string
	Label       string
	StartDate   time.Time // first active day (UTC midnight)
	EndDate     time.Time // last active day (UTC midnight), zero = open ended
	Weekdays    WeekdayMask
	DayStartMin int
	DayEndMin   int
}

// ActiveOn reports whether the commitment applies to the given calendar day.
// The active range is inclusive on both ends; the end date covers the whole
// final day.
func (c Commitment) ActiveOn(day time.Time) bool {
	if !c.Weekdays.Has(day.Weekday()) {
		return false
	}
	if day.Before(c.StartDate) {
		return false
	}
	if !c.EndDate.IsZero() && day.After(c.EndDate) {
		return false
	}
	return true
}

// WeekdayMask is a bit set over time.Weekday.
type WeekdayMask uint8

func (m WeekdayMask) Has(d time.Weekday) bool {
	return m&(1<<uint(d)) != 0
}

func (m WeekdayMask) With(d time.Weekday) WeekdayMask {
	return m | (1 << uint(d))
}

// EveryDay is the mask covering all seven weekdays.
const EveryDay WeekdayMask = 0x7f
