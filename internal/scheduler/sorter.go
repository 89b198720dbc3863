package scheduler

import (
	"sort"

	"github.com/alexanderramin/revisio/internal/domain"
)

// TopicCandidate is one schedulable topic entering the weekly build:
// its rating plus any ongoing sequence carried over from prior weeks.
type TopicCandidate struct {
	TopicID  string
	Rating   int
	Sequence *domain.SequenceState
}

// CanonicalSort orders topics by descending urgency with deterministic
// tie-breaks:
// 1. Rating: lower (less confident) first
// 2. Session total: more sessions first
// 3. Topic ID: lexical ascending
func CanonicalSort(topics []TopicCandidate) {
	sort.SliceStable(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]

		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}

		ta, tb := sessionTotal(a), sessionTotal(b)
		if ta != tb {
			return ta > tb
		}

		return a.TopicID < b.TopicID
	})
}

func sessionTotal(t TopicCandidate) int {
	if t.Sequence != nil && t.Sequence.Ongoing() {
		return t.Sequence.SessionsRequired
	}
	if plan, ok := PlanForRating(t.Rating); ok {
		return plan.SessionTotal
	}
	return 0
}
