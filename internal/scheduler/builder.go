package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
)

// BuildInput carries everything the weekly builder needs. Days must cover
// the seven days of the week starting at WeekStart; blocked time is already
// folded into them.
type BuildInput struct {
	UserID         string
	WeekStart      time.Time
	Topics         []TopicCandidate
	Days           []DayAvailability
	SessionMinutes int
	ReservePct     float64
	InsertBreaks   bool
}

// BuildResult is the packed week. Sessions includes break filler entries
// (empty TopicID) when InsertBreaks is set; callers filter those before
// persistence. An empty Sessions with a non-empty Topics input means
// insufficient capacity, not failure.
type BuildResult struct {
	Sessions []domain.StudySession
	Blockers []contract.CapacityBlocker
}

// BuildWeek packs every topic's required sessions into the week's open
// slots. Topics are taken in canonical urgency order; each session goes to
// the earliest slot satisfying its gap constraint relative to the previous
// session in the sequence. A reserve fraction of the open slots is withheld
// from assignment so rescheduling capacity survives the build.
func BuildWeek(in BuildInput) BuildResult {
	var res BuildResult

	tl := NewTimeline(in.Days)
	sessionSlots := slotsFor(in.SessionMinutes)
	totalFree := tl.FreeSlotCount()
	budget := totalFree - int(float64(totalFree)*in.ReservePct)

	topics := make([]TopicCandidate, len(in.Topics))
	copy(topics, in.Topics)
	CanonicalSort(topics)

	used := 0
	weekEnd := in.WeekStart.AddDate(0, 0, domain.DaysPerWeek)

	for _, topic := range topics {
		plan, ok := PlanForRating(topic.Rating)
		if !ok {
			continue
		}

		firstNumber := 1
		total := plan.SessionTotal
		var prevDay time.Time
		fresh := true
		if topic.Sequence != nil && topic.Sequence.Ongoing() {
			firstNumber = topic.Sequence.SessionsScheduled + 1
			total = topic.Sequence.SessionsRequired
			prevDay = topic.Sequence.LastSessionDate
			fresh = false
		}

		for n := firstNumber; n <= total; n++ {
			if used+sessionSlots > budget {
				res.Blockers = append(res.Blockers, contract.CapacityBlocker{
					TopicID:       topic.TopicID,
					SessionNumber: n,
					Code:          contract.BlockerReserveExhausted,
					Message:       "rescheduling reserve reached before all sessions were placed",
				})
				break
			}

			earliestDay := in.WeekStart
			if !prevDay.IsZero() {
				if d := prevDay.AddDate(0, 0, plan.GapAfter(n-1)); d.After(earliestDay) {
					earliestDay = d
				}
			}
			constrainFirst := fresh && n == 1 && len(plan.FirstDays) > 0

			start, found := tl.FirstFit(in.SessionMinutes, func(slot time.Time) bool {
				day := domain.DayOf(slot)
				if day.Before(earliestDay) || !day.Before(weekEnd) {
					return false
				}
				if constrainFirst && !plan.FirstDayAllowed(day.Weekday()) {
					return false
				}
				return true
			})
			if !found {
				code := contract.BlockerNoSlot
				if constrainFirst {
					code = contract.BlockerFirstDayFull
				}
				res.Blockers = append(res.Blockers, contract.CapacityBlocker{
					TopicID:       topic.TopicID,
					SessionNumber: n,
					Code:          code,
					Message:       fmt.Sprintf("no open slot for session %d of %d", n, total),
				})
				break
			}

			tl.Claim(start, in.SessionMinutes)
			used += sessionSlots
			res.Sessions = append(res.Sessions, domain.StudySession{
				UserID:      in.UserID,
				TopicID:     topic.TopicID,
				ScheduledAt: start,
				DurationMin: in.SessionMinutes,
				Status:      domain.SessionScheduled,
				Rationale:   buildRationale(topic.Rating, n, total, plan),
			})
			prevDay = domain.DayOf(start)

			if in.InsertBreaks {
				insertBreak(tl, &res, in.UserID, start.Add(time.Duration(in.SessionMinutes)*time.Minute))
			}
		}
	}

	sort.Slice(res.Sessions, func(i, j int) bool {
		a, b := res.Sessions[i], res.Sessions[j]
		if !a.ScheduledAt.Equal(b.ScheduledAt) {
			return a.ScheduledAt.Before(b.ScheduledAt)
		}
		return a.TopicID < b.TopicID
	})
	return res
}

// insertBreak claims the slot immediately after a placed session, when free,
// and records it as a non-persisted filler entry. Keeps back-to-back study
// blocks apart without consuming the assignment budget.
func insertBreak(tl *Timeline, res *BuildResult, userID string, at time.Time) {
	if !tl.FreeAt(at, SlotMinutes) {
		return
	}
	tl.Claim(at, SlotMinutes)
	res.Sessions = append(res.Sessions, domain.StudySession{
		UserID:      userID,
		ScheduledAt: at,
		DurationMin: SlotMinutes,
		Status:      domain.SessionScheduled,
		Rationale: domain.Rationale{
			FormatVersion: domain.RationaleFormatVersion,
			Rating:        domain.RatingUnlearned,
			SessionNumber: 1,
			SessionTotal:  1,
			Label:         "break",
			Explanation:   "rest between study blocks",
		},
	})
}

func buildRationale(rating, number, total int, plan SessionPlan) domain.Rationale {
	explanation := fmt.Sprintf("confidence %d: %d session(s)", rating, total)
	if len(plan.GapDays) > 0 {
		explanation = fmt.Sprintf("%s, minimum spacing %v days", explanation, plan.GapDays)
	}
	return domain.Rationale{
		FormatVersion: domain.RationaleFormatVersion,
		Rating:        rating,
		SessionNumber: number,
		SessionTotal:  total,
		Label:         fmt.Sprintf("%s %d/%d", plan.Label, number, total),
		Explanation:   explanation,
	}
}
