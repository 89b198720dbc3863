package testutil

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithInactive() UserOption {
	return func(u *domain.User) {
		u.Active = false
	}
}

func NewUser(opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      "test user",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Preference options
type PrefsOption func(*domain.TimePreferences)

func WithWeekdayWindow(startMin, endMin int) PrefsOption {
	return func(p *domain.TimePreferences) {
		p.WeekdayStartMin = startMin
		p.WeekdayEndMin = endMin
	}
}

func WithWeekendWindow(startMin, endMin int) PrefsOption {
	return func(p *domain.TimePreferences) {
		p.WeekendStartMin = startMin
		p.WeekendEndMin = endMin
		p.UseWeekdayTimes = false
	}
}

func WithSessionMinutes(min int) PrefsOption {
	return func(p *domain.TimePreferences) {
		p.SessionMinutes = min
	}
}

func WithReserve(pct float64) PrefsOption {
	return func(p *domain.TimePreferences) {
		p.SlotReservePct = pct
	}
}

// NewPrefs builds preferences with a wide-open 08:00-21:00 window every day,
// one-hour sessions, and no reserve, so tests opt in to tighter constraints.
func NewPrefs(userID string, opts ...PrefsOption) *domain.TimePreferences {
	p := &domain.TimePreferences{
		UserID:          userID,
		WeekdayStartMin: 8 * 60,
		WeekdayEndMin:   21 * 60,
		WeekendStartMin: 8 * 60,
		WeekendEndMin:   21 * 60,
		SessionMinutes:  60,
		SlotReservePct:  0,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewSession builds a scheduled study session with a valid rationale.
func NewSession(userID, topicID string, at time.Time, number, total int) *domain.StudySession {
	return &domain.StudySession{
		ID:          uuid.New().String(),
		UserID:      userID,
		TopicID:     topicID,
		ScheduledAt: at,
		DurationMin: 60,
		Status:      domain.SessionScheduled,
		Rationale: domain.Rationale{
			FormatVersion: domain.RationaleFormatVersion,
			Rating:        1,
			SessionNumber: number,
			SessionTotal:  total,
			Label:         "test",
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}
