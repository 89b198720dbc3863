package service

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// reconstructSequences rebuilds per-topic SequenceState from session history
// before the target week. Only the maximum session number seen per topic
// counts, and only sequences with scheduled < required carry over. Sessions
// whose rationale failed validation at read time (zero format version) are
// skipped rather than failing the whole reconstruction.
func reconstructSequences(sessions []*domain.StudySession, before time.Time) map[string]domain.SequenceState {
	type latest struct {
		number int
		total  int
		day    time.Time
	}
	best := make(map[string]latest)

	for _, s := range sessions {
		if s.IsFiller() || !s.ScheduledAt.Before(before) {
			continue
		}
		if s.Rationale.FormatVersion == 0 {
			continue
		}
		cur, ok := best[s.TopicID]
		if !ok || s.Rationale.SessionNumber > cur.number {
			best[s.TopicID] = latest{
				number: s.Rationale.SessionNumber,
				total:  s.Rationale.SessionTotal,
				day:    domain.DayOf(s.ScheduledAt),
			}
		}
	}

	out := make(map[string]domain.SequenceState)
	for topicID, l := range best {
		if l.number >= l.total {
			continue
		}
		out[topicID] = domain.SequenceState{
			SessionsScheduled: l.number,
			SessionsRequired:  l.total,
			LastSessionDate:   l.day,
		}
	}
	return out
}
