package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
	"golang.org/x/sync/errgroup"
)

type cycleService struct {
	users    repository.UserRepo
	schedule ScheduleService
	observer UseCaseObserver
	now      func() time.Time
}

func NewCycleService(users repository.UserRepo, schedule ScheduleService, observers ...UseCaseObserver) CycleService {
	return &cycleService{
		users:    users,
		schedule: schedule,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RunCycle regenerates the upcoming week for every active user. Users are
// processed by a bounded worker pool, each under its own time budget, and
// one user's failure never aborts the rest: it is recorded in the report.
func (s *cycleService) RunCycle(ctx context.Context, req contract.CycleRequest) (*contract.CycleReport, error) {
	started := s.now()
	report, err := s.runCycle(ctx, req)
	event := UseCaseEvent{
		Name:      "run_cycle",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{},
	}
	if report != nil {
		event.Fields["success_count"] = report.SuccessCount
		event.Fields["failed_count"] = report.FailedCount
		event.Fields["skipped_count"] = report.SkippedCount
	}
	s.observer.ObserveUseCase(ctx, event)
	return report, err
}

func (s *cycleService) runCycle(ctx context.Context, req contract.CycleRequest) (*contract.CycleReport, error) {
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}
	workerLimit := req.WorkerLimit
	if workerLimit < 1 {
		workerLimit = 1
	}

	// The upcoming week: the Monday after the current one.
	weekStart := domain.MondayOf(now).AddDate(0, 0, domain.DaysPerWeek)

	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	report := &contract.CycleReport{WeekStart: weekStart}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit)
	for _, u := range users {
		userID := u.ID
		g.Go(func() error {
			userCtx := gctx
			cancel := func() {}
			if req.UserBudget > 0 {
				userCtx, cancel = context.WithTimeout(gctx, req.UserBudget)
			}
			defer cancel()

			_, genErr := s.schedule.GenerateForUser(userCtx, userID, weekStart)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case genErr == nil:
				report.SuccessCount++
			case errors.Is(genErr, ErrNothingToSchedule), errors.Is(genErr, repository.ErrNotFound):
				report.SkippedCount++
			default:
				report.FailedCount++
				report.Errors = append(report.Errors, contract.CycleUserError{
					UserID: userID,
					Error:  genErr.Error(),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}
