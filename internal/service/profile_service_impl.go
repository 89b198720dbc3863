package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
	"github.com/alexanderramin/revisio/internal/scheduler"
	"github.com/google/uuid"
)

type profileService struct {
	users   repository.UserRepo
	ratings repository.RatingRepo
	prefs   repository.PreferencesRepo
	blocked repository.BlockedRepo
	commits repository.CommitmentRepo
	now     func() time.Time
}

func NewProfileService(
	users repository.UserRepo,
	ratings repository.RatingRepo,
	prefs repository.PreferencesRepo,
	blocked repository.BlockedRepo,
	commits repository.CommitmentRepo,
) ProfileService {
	return &profileService{
		users:   users,
		ratings: ratings,
		prefs:   prefs,
		blocked: blocked,
		commits: commits,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *profileService) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *profileService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListActive(ctx)
}

func (s *profileService) RateTopic(ctx context.Context, userID, topicID string, rating int) error {
	if !domain.ValidRatings[rating] {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidRating,
			Message: fmt.Sprintf("rating %d is not one of -2, 0, 1-5", rating),
		}
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.ratings.Upsert(ctx, &domain.TopicRating{
		UserID:  userID,
		TopicID: topicID,
		Rating:  rating,
	})
}

func (s *profileService) ListRatings(ctx context.Context, userID string) ([]domain.TopicRating, error) {
	return s.ratings.ListByUser(ctx, userID)
}

func (s *profileService) SetPreferences(ctx context.Context, p *domain.TimePreferences) error {
	if p.SessionMinutes == 0 {
		p.SessionMinutes = domain.DefaultSessionMinutes
	}
	if p.SlotReservePct == 0 {
		p.SlotReservePct = domain.DefaultSlotReservePct
	}
	if err := p.Validate(); err != nil {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidPreferences,
			Message: err.Error(),
		}
	}
	return s.prefs.Upsert(ctx, p)
}

func (s *profileService) GetPreferences(ctx context.Context, userID string) (*domain.TimePreferences, error) {
	return s.prefs.Get(ctx, userID)
}

func (s *profileService) AddBlockedTime(ctx context.Context, userID string, b *domain.BlockedInterval) error {
	if !b.Valid() {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidPreferences,
			Message: fmt.Sprintf("blocked interval ends at or before it starts (%s - %s)", b.Start, b.End),
		}
	}
	return s.blocked.Create(ctx, userID, b)
}

func (s *profileService) AddCommitment(ctx context.Context, c *domain.Commitment) error {
	if c.DayEndMin <= c.DayStartMin {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidPreferences,
			Message: fmt.Sprintf("commitment window %d-%d is empty", c.DayStartMin, c.DayEndMin),
		}
	}
	if c.Weekdays == 0 {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidPreferences,
			Message: "commitment has no active weekdays",
		}
	}
	return s.commits.Create(ctx, c)
}

func (s *profileService) WeekAvailability(ctx context.Context, userID string, weekStart time.Time) ([]scheduler.DayAvailability, error) {
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek)
	blocks, err := s.blocked.ListByUserInRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("loading blocked times: %w", err)
	}
	commits, err := s.commits.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading commitments: %w", err)
	}
	blocks = append(blocks, scheduler.ExpandCommitments(commits, weekStart, domain.DaysPerWeek)...)
	return scheduler.WeekAvailability(weekStart, *prefs, blocks), nil
}
