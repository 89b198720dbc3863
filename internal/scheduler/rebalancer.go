package scheduler

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// RebalanceHorizonDays bounds the forward scan for a replacement slot,
// starting at the missed session's calendar day.
const RebalanceHorizonDays = 14

// RebalanceInput carries the state the rebalancer consults. Others holds
// every other session for the user across the horizon (the missed one
// excluded); Blocked must already be expanded over the same horizon.
type RebalanceInput struct {
	Missed      domain.StudySession
	Others      []domain.StudySession
	Blocked     []domain.BlockedInterval
	Preferences domain.TimePreferences
}

// FindReplacementSlot scans the horizon in chronological order for the first
// fixed-granularity slot that starts strictly after the missed session's
// original time, keeps the session inside that day's open window, and
// collides with neither another session nor a blocked interval. The zero
// result with false means the session stays missed.
func FindReplacementSlot(in RebalanceInput) (time.Time, bool) {
	days := DaysAvailability(in.Missed.ScheduledAt, RebalanceHorizonDays, in.Preferences, in.Blocked)
	tl := NewTimeline(days)
	for _, s := range in.Others {
		if s.Status == domain.SessionMissed {
			continue
		}
		tl.OccupyInterval(s.ScheduledAt, s.EndsAt())
	}

	original := in.Missed.ScheduledAt
	return tl.FirstFit(in.Missed.DurationMin, func(slot time.Time) bool {
		return slot.After(original)
	})
}

// ShiftFollowers returns shifted copies of every session in the same topic
// sequence with a strictly later session number that is still scheduled,
// moved by exactly delta so the sequence keeps its relative spacing.
func ShiftFollowers(sessions []domain.StudySession, missed domain.StudySession, delta time.Duration) []domain.StudySession {
	var out []domain.StudySession
	for _, s := range sessions {
		if s.ID == missed.ID || s.TopicID != missed.TopicID {
			continue
		}
		if s.Status != domain.SessionScheduled {
			continue
		}
		if s.Rationale.SessionNumber <= missed.Rationale.SessionNumber {
			continue
		}
		shifted := s
		shifted.ScheduledAt = s.ScheduledAt.Add(delta)
		out = append(out, shifted)
	}
	return out
}
