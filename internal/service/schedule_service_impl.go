package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
	"github.com/alexanderramin/revisio/internal/scheduler"
	"github.com/google/uuid"
)

// ErrNothingToSchedule signals that a user has no schedulable topics; the
// regeneration cycle records such users as skipped rather than failed.
var ErrNothingToSchedule = errors.New("no schedulable topics")

type scheduleService struct {
	ratings  repository.RatingRepo
	prefs    repository.PreferencesRepo
	blocked  repository.BlockedRepo
	commits  repository.CommitmentRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	locks    *userLocks
	observer UseCaseObserver
	now      func() time.Time
}

func NewScheduleService(
	ratings repository.RatingRepo,
	prefs repository.PreferencesRepo,
	blocked repository.BlockedRepo,
	commits repository.CommitmentRepo,
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		ratings:  ratings,
		prefs:    prefs,
		blocked:  blocked,
		commits:  commits,
		sessions: sessions,
		uow:      uow,
		locks:    newUserLocks(),
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error) {
	started := s.now()
	resp, err := s.generate(ctx, req)
	event := UseCaseEvent{
		Name:      "generate_schedule",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{"user_id": req.UserID, "week_start": req.WeekStart.Format(time.RFC3339)},
	}
	if resp != nil {
		event.Fields["persisted"] = resp.Persisted
		event.Fields["infeasible"] = resp.Infeasible
	}
	s.observer.ObserveUseCase(ctx, event)
	return resp, err
}

func (s *scheduleService) generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error) {
	if err := validateGenerateRequest(&req); err != nil {
		return nil, err
	}

	weekEnd := req.WeekStart.AddDate(0, 0, domain.DaysPerWeek)
	blocks := append([]domain.BlockedInterval{}, req.BlockedTimes...)
	blocks = append(blocks, scheduler.ExpandCommitments(req.Commitments, req.WeekStart, domain.DaysPerWeek)...)
	days := scheduler.WeekAvailability(req.WeekStart, req.Preferences, blocks)

	var topics []scheduler.TopicCandidate
	for topicID, rating := range req.Ratings {
		if rating == domain.RatingExcluded {
			continue
		}
		cand := scheduler.TopicCandidate{TopicID: topicID, Rating: rating}
		if seq, ok := req.OngoingTopics[topicID]; ok && seq.Ongoing() {
			seqCopy := seq
			cand.Sequence = &seqCopy
		}
		topics = append(topics, cand)
	}

	result := scheduler.BuildWeek(scheduler.BuildInput{
		UserID:         req.UserID,
		WeekStart:      req.WeekStart,
		Topics:         topics,
		Days:           days,
		SessionMinutes: req.SessionMinutes,
		ReservePct:     req.Preferences.SlotReservePct,
		InsertBreaks:   true,
	})

	resp := &contract.GenerateResponse{Blockers: result.Blockers}
	scheduled := 0
	for i := range result.Sessions {
		sess := &result.Sessions[i]
		if !sess.IsFiller() {
			sess.ID = uuid.New().String()
			scheduled++
		}
		resp.Entries = append(resp.Entries, contract.ScheduledEntry{
			SessionID:   sess.ID,
			TopicID:     sess.TopicID,
			ScheduledAt: sess.ScheduledAt,
			DurationMin: sess.DurationMin,
			Rationale:   sess.Rationale,
		})
	}
	resp.Infeasible = len(topics) > 0 && scheduled == 0

	if req.DryRun {
		return resp, nil
	}

	// Full replace for the target week: delete the old set, insert the new
	// one, inside a single transaction so readers never see a mixed state.
	// Filler entries are presentation only and are not persisted.
	lock := s.locks.forUser(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		if err := txSessions.DeleteRange(ctx, req.UserID, req.WeekStart, weekEnd); err != nil {
			return err
		}
		now := s.now()
		for i := range result.Sessions {
			sess := result.Sessions[i]
			if sess.IsFiller() {
				continue
			}
			sess.CreatedAt = now
			sess.UpdatedAt = now
			if err := txSessions.Create(ctx, &sess); err != nil {
				return err
			}
			resp.Persisted++
		}
		return nil
	})
	if err != nil {
		resp.Persisted = 0
		return nil, fmt.Errorf("replacing week sessions: %w", err)
	}
	return resp, nil
}

func (s *scheduleService) GenerateForUser(ctx context.Context, userID string, weekStart time.Time) (*contract.GenerateResponse, error) {
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	ratings, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading ratings: %w", err)
	}
	ratingMap := make(map[string]int, len(ratings))
	schedulable := 0
	for _, r := range ratings {
		ratingMap[r.TopicID] = r.Rating
		if r.Schedulable() {
			schedulable++
		}
	}
	if schedulable == 0 {
		return nil, ErrNothingToSchedule
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

	history, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}

	req := contract.GenerateRequest{
		UserID:         userID,
		WeekStart:      weekStart,
		Ratings:        ratingMap,
		Preferences:    *prefs,
		BlockedTimes:   blocks,
		Commitments:    commits,
		SessionMinutes: prefs.SessionMinutes,
		OngoingTopics:  reconstructSequences(history, weekStart),
	}
	return s.Generate(ctx, req)
}

func validateGenerateRequest(req *contract.GenerateRequest) error {
	if !domain.IsWeekStart(req.WeekStart) {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidWeekStart,
			Message: fmt.Sprintf("week start %s is not a Monday 00:00 UTC", req.WeekStart.Format(time.RFC3339)),
		}
	}
	if req.SessionMinutes == 0 {
		req.SessionMinutes = req.Preferences.SessionMinutes
	}
	if req.SessionMinutes == 0 {
		req.SessionMinutes = domain.DefaultSessionMinutes
	}
	if req.SessionMinutes < scheduler.SlotMinutes || req.SessionMinutes%scheduler.SlotMinutes != 0 {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidDuration,
			Message: fmt.Sprintf("session duration %d must be a positive multiple of %d minutes", req.SessionMinutes, scheduler.SlotMinutes),
		}
	}
	if err := req.Preferences.Validate(); err != nil {
		return &contract.ScheduleError{
			Code:    contract.ScheduleErrInvalidPreferences,
			Message: err.Error(),
		}
	}
	for topicID, rating := range req.Ratings {
		if !domain.ValidRatings[rating] {
			return &contract.ScheduleError{
				Code:    contract.ScheduleErrInvalidRating,
				Message: fmt.Sprintf("topic %s has invalid rating %d", topicID, rating),
			}
		}
	}
	return nil
}
