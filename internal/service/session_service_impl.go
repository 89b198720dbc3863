package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
	"github.com/alexanderramin/revisio/internal/scheduler"
)

type sessionService struct {
	sessions repository.SessionRepo
	prefs    repository.PreferencesRepo
	blocked  repository.BlockedRepo
	commits  repository.CommitmentRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewSessionService(
	sessions repository.SessionRepo,
	prefs repository.PreferencesRepo,
	blocked repository.BlockedRepo,
	commits repository.CommitmentRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		prefs:    prefs,
		blocked:  blocked,
		commits:  commits,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.StudySession, error) {
	return s.sessions.ListByUserInRange(ctx, userID, weekStart, weekStart.AddDate(0, 0, domain.DaysPerWeek))
}

func (s *sessionService) MarkDone(ctx context.Context, id string) error {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sess.Status = domain.SessionDone
	return s.sessions.Update(ctx, sess)
}

// MarkMissed flips the session to missed and immediately scans the forward
// horizon for a replacement slot. When one exists the session returns to
// scheduled at the new time and every later still-scheduled session in the
// same sequence shifts by the identical delta. When none exists the missed
// state is terminal.
func (s *sessionService) MarkMissed(ctx context.Context, id string) (*contract.MarkMissedResult, error) {
	started := s.now()
	res, err := s.markMissed(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "mark_missed",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{"session_id": id},
	})
	return res, err
}

func (s *sessionService) markMissed(ctx context.Context, id string) (*contract.MarkMissedResult, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	original := sess.ScheduledAt
	sess.Status = domain.SessionMissed
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}

	prefs, err := s.prefs.Get(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	horizonStart := domain.DayOf(original)
	horizonEnd := horizonStart.AddDate(0, 0, scheduler.RebalanceHorizonDays)

	others, err := s.sessions.ListByUserInRange(ctx, sess.UserID, horizonStart, horizonEnd)
	if err != nil {
		return nil, fmt.Errorf("loading horizon sessions: %w", err)
	}
	occupied := others[:0]
	for _, o := range others {
		if o.ID != sess.ID {
			occupied = append(occupied, o)
		}
	}

	blocks, err := s.blocked.ListByUserInRange(ctx, sess.UserID, horizonStart, horizonEnd)
	if err != nil {
		return nil, fmt.Errorf("loading blocked times: %w", err)
	}
	commits, err := s.commits.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading commitments: %w", err)
	}
	blocks = append(blocks, scheduler.ExpandCommitments(commits, horizonStart, scheduler.RebalanceHorizonDays)...)

	in := scheduler.RebalanceInput{
		Missed:      *sess,
		Blocked:     blocks,
		Preferences: *prefs,
	}
	for _, o := range occupied {
		in.Others = append(in.Others, *o)
	}

	newAt, found := scheduler.FindReplacementSlot(in)
	if !found {
		return &contract.MarkMissedResult{Rescheduled: false}, nil
	}

	delta := newAt.Sub(original)
	topicSessions, err := s.sessions.ListByUserTopic(ctx, sess.UserID, sess.TopicID)
	if err != nil {
		return nil, fmt.Errorf("loading sequence sessions: %w", err)
	}
	var followers []domain.StudySession
	for _, t := range topicSessions {
		followers = append(followers, *t)
	}
	shifted := scheduler.ShiftFollowers(followers, *sess, delta)

	result := &contract.MarkMissedResult{
		Rescheduled:    true,
		NewScheduledAt: &newAt,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		sess.ScheduledAt = newAt
		sess.Status = domain.SessionScheduled
		if err := txSessions.Update(ctx, sess); err != nil {
			return err
		}
		for i := range shifted {
			if err := txSessions.Update(ctx, &shifted[i]); err != nil {
				return err
			}
			result.ShiftedIDs = append(result.ShiftedIDs, shifted[i].ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("applying reschedule: %w", err)
	}
	return result, nil
}
