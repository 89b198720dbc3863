package domain

import "time"

// SequenceState is the cross-week progress of one topic's spaced-repetition
// sequence. It is reconstructed from persisted session rationales at each
// regeneration; only sequences with scheduled < required continue numbering
// in the next week.
type SequenceState struct {
	SessionsScheduled int
	SessionsRequired  int
	LastSessionDate   time.Time // UTC midnight of the latest session's day
}

// Ongoing reports whether the sequence still has sessions left to place.
func (s SequenceState) Ongoing() bool {
	return s.SessionsScheduled > 0 && s.SessionsScheduled < s.SessionsRequired
}
