package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// SlotMinutes is the fixed scheduling granularity.
const SlotMinutes = 30

// ClockSpan is a half-open [StartMin, EndMin) interval of minutes from
// midnight within a single day.
type ClockSpan struct {
	StartMin int
	EndMin   int
}

func (s ClockSpan) Len() int {
	return s.EndMin - s.StartMin
}

// DayAvailability is one calendar day's study window after subtracting
// blocked intervals: the selected bounds, the remaining open sub-spans, and
// the open-minute total.
type DayAvailability struct {
	Date     time.Time // UTC midnight
	StartMin int
	EndMin   int
	Free     []ClockSpan
	OpenMin  int
}

// ExpandCommitments turns recurring commitments into concrete per-day
// blocked intervals for the given span of days. A commitment contributes to
// a day only when its weekday mask includes that day and the day lies inside
// its active range. Zero- or negative-length expansions are discarded.
func ExpandCommitments(commitments []domain.Commitment, from time.Time, days int) []domain.BlockedInterval {
	var out []domain.BlockedInterval
	start := domain.DayOf(from)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		for _, c := range commitments {
			if !c.ActiveOn(day) {
				continue
			}
			b := domain.BlockedInterval{
				Start:   day.Add(time.Duration(c.DayStartMin) * time.Minute),
				End:     day.Add(time.Duration(c.DayEndMin) * time.Minute),
				Source:  domain.BlockRecurring,
				Label:   c.Label,
				EventID: c.ID,
			}
			if b.Valid() {
				out = append(out, b)
			}
		}
	}
	return out
}

// DedupeBlocked drops intervals whose (start, end) pair already appeared,
// regardless of source, so overlapping one-off and recurring entries are not
// double counted.
func DedupeBlocked(blocks []domain.BlockedInterval) []domain.BlockedInterval {
	type key struct{ start, end int64 }
	seen := make(map[key]bool, len(blocks))
	out := make([]domain.BlockedInterval, 0, len(blocks))
	for _, b := range blocks {
		if !b.Valid() {
			continue
		}
		k := key{b.Start.UTC().Unix(), b.End.UTC().Unix()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}

// WeekAvailability computes the seven per-day availability windows for the
// week starting at weekStart. Blocked intervals must already be expanded and
// concrete; they are clipped to each day's window before subtraction.
func WeekAvailability(weekStart time.Time, prefs domain.TimePreferences, blocks []domain.BlockedInterval) []DayAvailability {
	return DaysAvailability(weekStart, domain.DaysPerWeek, prefs, blocks)
}

// DaysAvailability is WeekAvailability generalized to an arbitrary horizon,
// shared with the missed-session forward scan.
func DaysAvailability(from time.Time, days int, prefs domain.TimePreferences, blocks []domain.BlockedInterval) []DayAvailability {
	blocks = DedupeBlocked(blocks)
	start := domain.DayOf(from)
	out := make([]DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		startMin, endMin := prefs.DayBounds(int(day.Weekday()))
		out = append(out, dayAvailability(day, startMin, endMin, blocks))
	}
	return out
}

func dayAvailability(day time.Time, startMin, endMin int, blocks []domain.BlockedInterval) DayAvailability {
	avail := DayAvailability{Date: day, StartMin: startMin, EndMin: endMin}
	if startMin >= endMin {
		return avail
	}

	// Clip each blocked interval to this day's window, in window-relative
	// minutes.
	var busy []ClockSpan
	for _, b := range blocks {
		s := minutesIntoDay(b.Start, day)
		e := minutesIntoDay(b.End, day)
		if s < startMin {
			s = startMin
		}
		if e > endMin {
			e = endMin
		}
		if s < e {
			busy = append(busy, ClockSpan{StartMin: s, EndMin: e})
		}
	}
	merged := mergeSpans(busy)

	// Free spans are the window minus the merged busy spans.
	cursor := startMin
	for _, m := range merged {
		if m.StartMin > cursor {
			avail.Free = append(avail.Free, ClockSpan{StartMin: cursor, EndMin: m.StartMin})
		}
		if m.EndMin > cursor {
			cursor = m.EndMin
		}
	}
	if cursor < endMin {
		avail.Free = append(avail.Free, ClockSpan{StartMin: cursor, EndMin: endMin})
	}
	for _, f := range avail.Free {
		avail.OpenMin += f.Len()
	}
	return avail
}

// minutesIntoDay converts an instant to minutes relative to the given UTC
// midnight, clamped to the day so multi-day blocks clip correctly.
func minutesIntoDay(t, day time.Time) int {
	min := int(t.UTC().Sub(day).Minutes())
	if min < 0 {
		return 0
	}
	if min > 24*60 {
		return 24 * 60
	}
	return min
}

func mergeSpans(spans []ClockSpan) []ClockSpan {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].StartMin != spans[j].StartMin {
			return spans[i].StartMin < spans[j].StartMin
		}
		return spans[i].EndMin < spans[j].EndMin
	})
	out := []ClockSpan{spans[0]}
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.StartMin <= last.EndMin {
			if s.EndMin > last.EndMin {
				last.EndMin = s.EndMin
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
