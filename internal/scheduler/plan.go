package scheduler

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// SessionPlan is the spaced-repetition prescription derived from a
// confidence rating: how many sessions a topic needs, the minimum days
// between consecutive sessions, and any constraint on the first session's
// weekday. It is derived on demand, never persisted.
type SessionPlan struct {
	SessionTotal int
	GapDays      []int
	FirstDays    []time.Weekday // nil = unconstrained
	Label        string
}

// PlanForRating maps a confidence rating to its session plan. The second
// return value is false for excluded or unknown ratings.
//
// Rating 0 ("haven't learned yet") gets the most intensive plan: three
// sessions with 1- then 2-day spacing and no weekday constraint. Rating 2
// uses the canonical 2-day gap.
func PlanForRating(rating int) (SessionPlan, bool) {
	switch rating {
	case domain.RatingUnlearned:
		return SessionPlan{
			SessionTotal: 3,
			GapDays:      []int{1, 2},
			Label:        "not yet learned",
		}, true
	case 1:
		return SessionPlan{
			SessionTotal: 3,
			GapDays:      []int{2, 3},
			FirstDays:    []time.Weekday{time.Monday, time.Tuesday},
			Label:        "low confidence",
		}, true
	case 2:
		return SessionPlan{
			SessionTotal: 2,
			GapDays:      []int{2},
			Label:        "shaky",
		}, true
	case 3, 4, 5:
		return SessionPlan{
			SessionTotal: 1,
			Label:        "confident refresh",
		}, true
	default:
		return SessionPlan{}, false
	}
}

// GapAfter returns the minimum days between session n and session n+1.
func (p SessionPlan) GapAfter(n int) int {
	idx := n - 1
	if idx < 0 || idx >= len(p.GapDays) {
		return 0
	}
	return p.GapDays[idx]
}

// FirstDayAllowed reports whether a fresh sequence may start on the given
// weekday.
func (p SessionPlan) FirstDayAllowed(d time.Weekday) bool {
	if len(p.FirstDays) == 0 {
		return true
	}
	for _, fd := range p.FirstDays {
		if fd == d {
			return true
		}
	}
	return false
}
