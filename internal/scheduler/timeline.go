package scheduler

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// Timeline is the shared free-interval representation of a horizon's
// occupancy: fixed-granularity slots per day, derived from availability and
// consumed by both the weekly builder and the missed-session rebalancer.
// Slots are aligned to each day's window start.
type Timeline struct {
	days []timelineDay
}

type timelineDay struct {
	date  time.Time
	slots []timeSlot
}

type timeSlot struct {
	start time.Time
	free  bool
}

// NewTimeline builds a timeline over the given days. A slot exists for every
// aligned 30-minute step inside the day's window and is free when it lies
// entirely inside one of the day's free spans.
func NewTimeline(days []DayAvailability) *Timeline {
	tl := &Timeline{days: make([]timelineDay, 0, len(days))}
	for _, d := range days {
		td := timelineDay{date: d.Date}
		for m := d.StartMin; m+SlotMinutes <= d.EndMin; m += SlotMinutes {
			free := false
			for _, f := range d.Free {
				if m >= f.StartMin && m+SlotMinutes <= f.EndMin {
					free = true
					break
				}
			}
			td.slots = append(td.slots, timeSlot{
				start: d.Date.Add(time.Duration(m) * time.Minute),
				free:  free,
			})
		}
		tl.days = append(tl.days, td)
	}
	return tl
}

// FreeSlotCount returns the number of currently free slots.
func (t *Timeline) FreeSlotCount() int {
	n := 0
	for _, d := range t.days {
		for _, s := range d.slots {
			if s.free {
				n++
			}
		}
	}
	return n
}

// OccupySessions marks every slot overlapping one of the given sessions as
// busy. Filler entries count too: their time is not reusable.
func (t *Timeline) OccupySessions(sessions []domain.StudySession) {
	for _, s := range sessions {
		t.OccupyInterval(s.ScheduledAt, s.EndsAt())
	}
}

// OccupyInterval marks every slot intersecting [start, end) as busy.
func (t *Timeline) OccupyInterval(start, end time.Time) {
	for di := range t.days {
		for si := range t.days[di].slots {
			s := &t.days[di].slots[si]
			slotEnd := s.start.Add(SlotMinutes * time.Minute)
			if s.start.Before(end) && start.Before(slotEnd) {
				s.free = false
			}
		}
	}
}

// FirstFit scans days and slots in chronological order and returns the start
// of the earliest run of consecutive free slots covering durationMin whose
// first slot satisfies accept. The run must be contiguous in real time, so it
// never spans a blocked interval or a window edge. The run is not claimed.
func (t *Timeline) FirstFit(durationMin int, accept func(start time.Time) bool) (time.Time, bool) {
	need := slotsFor(durationMin)
	for _, d := range t.days {
		for i := range d.slots {
			s := d.slots[i]
			if !s.free || (accept != nil && !accept(s.start)) {
				continue
			}
			if t.runFits(d.slots, i, need) {
				return s.start, true
			}
		}
	}
	return time.Time{}, false
}

// Claim marks the run starting at start as busy. It returns false when any
// needed slot is missing or already busy, leaving the timeline unchanged.
func (t *Timeline) Claim(start time.Time, durationMin int) bool {
	need := slotsFor(durationMin)
	for di := range t.days {
		d := &t.days[di]
		for i := range d.slots {
			if !d.slots[i].start.Equal(start) {
				continue
			}
			if !t.runFits(d.slots, i, need) {
				return false
			}
			for k := 0; k < need; k++ {
				d.slots[i+k].free = false
			}
			return true
		}
	}
	return false
}

// FreeAt reports whether a full free run for durationMin starts exactly at
// start.
func (t *Timeline) FreeAt(start time.Time, durationMin int) bool {
	need := slotsFor(durationMin)
	for _, d := range t.days {
		for i := range d.slots {
			if d.slots[i].start.Equal(start) {
				return t.runFits(d.slots, i, need)
			}
		}
	}
	return false
}

func (t *Timeline) runFits(slots []timeSlot, i, need int) bool {
	if i+need > len(slots) {
		return false
	}
	for k := 0; k < need; k++ {
		s := slots[i+k]
		if !s.free {
			return false
		}
		want := slots[i].start.Add(time.Duration(k*SlotMinutes) * time.Minute)
		if !s.start.Equal(want) {
			return false
		}
	}
	return true
}

func slotsFor(durationMin int) int {
	n := durationMin / SlotMinutes
	if durationMin%SlotMinutes != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
