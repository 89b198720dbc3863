package app

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// GenerateRequest asks for one user's plan for one target week. Ratings map
// topic IDs to confidence values; ongoing sequences carried over from prior
// weeks continue their numbering instead of restarting.
type GenerateRequest struct {
	UserID         string
	WeekStart      time.Time // Monday 00:00 UTC
	Ratings        map[string]int
	Preferences    domain.TimePreferences
	BlockedTimes   []domain.BlockedInterval
	Commitments    []domain.Commitment
	SessionMinutes int
	OngoingTopics  map[string]domain.SequenceState
	DryRun         bool
}

// NewGenerateRequest builds a request with the standard defaults.
func NewGenerateRequest(userID string, weekStart time.Time) GenerateRequest {
	return GenerateRequest{
		UserID:         userID,
		WeekStart:      weekStart,
		Ratings:        map[string]int{},
		SessionMinutes: domain.DefaultSessionMinutes,
	}
}

// ScheduledEntry is one generated calendar entry. Entries without a TopicID
// are breaks; they appear in the response for presentation but are filtered
// before persistence.
type ScheduledEntry struct {
	SessionID   string
	TopicID     string
	ScheduledAt time.Time
	DurationMin int
	Rationale   domain.Rationale
}

type GenerateResponse struct {
	Entries    []ScheduledEntry
	Blockers   []CapacityBlocker
	Persisted  int
	Infeasible bool // schedulable topics existed but nothing could be placed
}

// MarkMissedResult reports the outcome of the automatic rebalance attempt
// that follows marking a session missed.
type MarkMissedResult struct {
	Rescheduled    bool
	NewScheduledAt *time.Time
	ShiftedIDs     []string
}
