package app

import "time"

// CycleUserError records one user's failure during a regeneration cycle.
type CycleUserError struct {
	UserID string
	Error  string
}

// CycleReport aggregates the outcome of one weekly regeneration cycle.
// One user's failure never aborts the remaining users; it lands here.
type CycleReport struct {
	WeekStart    time.Time
	SuccessCount int
	FailedCount  int
	SkippedCount int
	Errors       []CycleUserError
}

// CycleRequest configures one run of the regeneration cycle. Now is
// injectable for tests; zero means the wall clock.
type CycleRequest struct {
	Now         *time.Time
	WorkerLimit int
	UserBudget  time.Duration
}

// NewCycleRequest builds a request with the standard defaults.
func NewCycleRequest() CycleRequest {
	return CycleRequest{
		WorkerLimit: 4,
		UserBudget:  30 * time.Second,
	}
}
