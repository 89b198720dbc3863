package service

import (
	"context"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/scheduler"
)

type ScheduleService interface {
	// Generate packs one user's plan for one week from explicit inputs.
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error)
	// GenerateForUser loads the user's stored state and generates the week.
	GenerateForUser(ctx context.Context, userID string, weekStart time.Time) (*contract.GenerateResponse, error)
}

type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	ListWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.StudySession, error)
	MarkDone(ctx context.Context, id string) error
	// MarkMissed flips the session to missed and immediately attempts a
	// rebalance within the forward horizon.
	MarkMissed(ctx context.Context, id string) (*contract.MarkMissedResult, error)
}

type CycleService interface {
	RunCycle(ctx context.Context, req contract.CycleRequest) (*contract.CycleReport, error)
}

type ProfileService interface {
	CreateUser(ctx context.Context, name string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	RateTopic(ctx context.Context, userID, topicID string, rating int) error
	ListRatings(ctx context.Context, userID string) ([]domain.TopicRating, error)
	SetPreferences(ctx context.Context, p *domain.TimePreferences) error
	GetPreferences(ctx context.Context, userID string) (*domain.TimePreferences, error)
	AddBlockedTime(ctx context.Context, userID string, b *domain.BlockedInterval) error
	AddCommitment(ctx context.Context, c *domain.Commitment) error
	WeekAvailability(ctx context.Context, userID string, weekStart time.Time) ([]scheduler.DayAvailability, error)
}

type ImportService interface {
	// ImportProfile sets up a user, preferences, ratings, and obligations
	// from a JSON file in one transaction.
	ImportProfile(ctx context.Context, path string) (*domain.User, error)
}

type StatusService interface {
	GetWeekStatus(ctx context.Context, userID string, weekStart time.Time) (*contract.WeekStatus, error)
}
