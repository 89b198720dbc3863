package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/revisio/internal/domain"
)

// TestBuildWeek_Invariants_NoOverlapAndGapsHonored property-tests the core
// packing invariants over randomized topic mixes and availability: no two
// entries overlap, every entry stays inside the week and the study window,
// and consecutive sessions of one topic keep their minimum day gap.
func TestBuildWeek_Invariants_NoOverlapAndGapsHonored(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weekStart := day(2024, time.January, 15)
	ratings := []int{-2, 0, 1, 2, 3, 4, 5}

	for trial := 0; trial < 100; trial++ {
		startMin := (rng.Intn(20) + 12) * SlotMinutes // 06:00 to 15:30
		endMin := startMin + (rng.Intn(12)+4)*SlotMinutes

		var blocks []domain.BlockedInterval
		for i := 0; i < rng.Intn(4); i++ {
			d := weekStart.AddDate(0, 0, rng.Intn(7))
			s := d.Add(time.Duration(startMin+rng.Intn(endMin-startMin)) * time.Minute)
			blocks = append(blocks, domain.BlockedInterval{
				Start: s,
				End:   s.Add(time.Duration(rng.Intn(4)+1) * SlotMinutes * time.Minute),
			})
		}

		prefs := domain.TimePreferences{
			WeekdayStartMin: startMin,
			WeekdayEndMin:   endMin,
			UseWeekdayTimes: true,
		}

		numTopics := rng.Intn(6) + 1
		topics := make([]TopicCandidate, numTopics)
		for i := range topics {
			topics[i] = TopicCandidate{
				TopicID: fmt.Sprintf("t-%d", i),
				Rating:  ratings[rng.Intn(len(ratings))],
			}
		}

		sessionMin := (rng.Intn(3) + 1) * SlotMinutes

		res := BuildWeek(BuildInput{
			UserID:         "u-1",
			WeekStart:      weekStart,
			Topics:         topics,
			Days:           WeekAvailability(weekStart, prefs, blocks),
			SessionMinutes: sessionMin,
			ReservePct:     float64(rng.Intn(3)) * 0.1,
			InsertBreaks:   rng.Intn(2) == 1,
		})

		weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek)
		for i := range res.Sessions {
			a := res.Sessions[i]
			assert.False(t, a.ScheduledAt.Before(weekStart), "trial %d: entry before week", trial)
			assert.False(t, weekEnd.Before(a.EndsAt()), "trial %d: entry past week", trial)

			dayMin := int(a.ScheduledAt.Sub(domain.DayOf(a.ScheduledAt)).Minutes())
			assert.GreaterOrEqual(t, dayMin, startMin, "trial %d: entry before window", trial)
			assert.LessOrEqual(t, dayMin+a.DurationMin, endMin, "trial %d: entry past window", trial)

			for j := i + 1; j < len(res.Sessions); j++ {
				b := res.Sessions[j]
				assert.False(t, a.Overlaps(&b), "trial %d: %s and %s overlap", trial, a.TopicID, b.TopicID)
			}
		}

		lastDay := make(map[string]time.Time)
		for _, s := range res.Sessions {
			if s.IsFiller() {
				continue
			}
			plan, _ := PlanForRating(s.Rationale.Rating)
			if prev, ok := lastDay[s.TopicID]; ok {
				gap := int(domain.DayOf(s.ScheduledAt).Sub(prev).Hours() / 24)
				assert.GreaterOrEqual(t, gap, plan.GapAfter(s.Rationale.SessionNumber-1),
					"trial %d: topic %s gap too small", trial, s.TopicID)
			}
			lastDay[s.TopicID] = domain.DayOf(s.ScheduledAt)
		}
	}
}
