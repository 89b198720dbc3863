package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// ErrNotFound is returned when a referenced row does not exist. Callers test
// for it with errors.Is.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListActive(ctx context.Context) ([]*domain.User, error)
}

type RatingRepo interface {
	Upsert(ctx context.Context, r *domain.TopicRating) error
	ListByUser(ctx context.Context, userID string) ([]domain.TopicRating, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context, userID string) (*domain.TimePreferences, error)
	Upsert(ctx context.Context, p *domain.TimePreferences) error
}

type BlockedRepo interface {
	Create(ctx context.Context, userID string, b *domain.BlockedInterval) error
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.BlockedInterval, error)
	Delete(ctx context.Context, eventID string) error
}

type CommitmentRepo interface {
	Create(ctx context.Context, c *domain.Commitment) error
	ListByUser(ctx context.Context, userID string) ([]domain.Commitment, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	Update(ctx context.Context, s *domain.StudySession) error
	ListByUser(ctx context.Context, userID string) ([]*domain.StudySession, error)
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.StudySession, error)
	ListByUserTopic(ctx context.Context, userID, topicID string) ([]*domain.StudySession, error)
	DeleteRange(ctx context.Context, userID string, from, to time.Time) error
}
