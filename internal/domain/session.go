package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// RationaleFormatVersion is the current format of the per-session rationale
// record. Bump when the shape changes; readers skip versions they do not know.
const RationaleFormatVersion = 2

// Rationale explains why a session exists: which rating produced it and where
// it sits in its topic's spaced-repetition sequence. It is written as a typed
// record at generation time and validated when read back.
type Rationale struct {
	FormatVersion int    `json:"format_version"`
	Rating        int    `json:"rating"`
	SessionNumber int    `json:"session_number"`
	SessionTotal  int    `json:"session_total"`
	Label         string `json:"label"`
	Explanation   string `json:"explanation,omitempty"`
}

// Validate checks the rationale is well-formed enough to drive sequence
// reconstruction. Unknown format versions are rejected rather than guessed at.
func (r Rationale) Validate() error {
	if r.FormatVersion <= 0 || r.FormatVersion > RationaleFormatVersion {
		return fmt.Errorf("unsupported rationale format version %d", r.FormatVersion)
	}
	if r.SessionNumber < 1 {
		return fmt.Errorf("invalid session number %d", r.SessionNumber)
	}
	if r.SessionTotal < r.SessionNumber {
		return fmt.Errorf("session number %d exceeds total %d", r.SessionNumber, r.SessionTotal)
	}
	if !ValidRatings[r.Rating] {
		return fmt.Errorf("invalid rating %d", r.Rating)
	}
	return nil
}

// ParseRationale decodes and validates a stored rationale blob.
func ParseRationale(raw string) (Rationale, error) {
	var r Rationale
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Rationale{}, fmt.Errorf("decoding rationale: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rationale{}, err
	}
	return r, nil
}

// Encode serializes the rationale for storage.
func (r Rationale) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding rationale: %w", err)
	}
	return string(b), nil
}

// StudySession is one scheduled, fixed-duration study block for a single
// topic. TopicID is empty for filler/break entries, which are presentation
// only and must never be persisted.
type StudySession struct {
	ID          string
	UserID      string
	TopicID     string
	ScheduledAt time.Time
	DurationMin int
	Status      SessionStatus
	Rationale   Rationale
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFiller reports whether the entry is a non-schedulable break.
func (s *StudySession) IsFiller() bool {
	return s.TopicID == ""
}

// EndsAt returns the session's exclusive end instant.
func (s *StudySession) EndsAt() time.Time {
	return s.ScheduledAt.Add(time.Duration(s.DurationMin) * time.Minute)
}

// Overlaps reports whether two sessions intersect in time.
func (s *StudySession) Overlaps(other *StudySession) bool {
	return s.ScheduledAt.Before(other.EndsAt()) && other.ScheduledAt.Before(s.EndsAt())
}
