package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/testutil"
)

func TestRunCycle_TargetsUpcomingWeek(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "algebra", 2)

	// Wednesday of the week before testWeek.
	now := testWeek.AddDate(0, 0, -5).Add(14 * time.Hour)
	req := contract.NewCycleRequest()
	req.Now = &now

	svc := NewCycleService(s.users, s.schedule)
	report, err := svc.RunCycle(ctx, req)
	require.NoError(t, err)

	assert.True(t, report.WeekStart.Equal(testWeek))
	assert.Equal(t, 1, report.SuccessCount)

	persisted, err := s.sessions.ListByUserInRange(ctx, user.ID, testWeek, testWeek.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.NotEmpty(t, persisted, "sessions land in the upcoming week")
}

func TestRunCycle_IsolatesFailuresAndSkips(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	// Fully set up: succeeds.
	ready := s.seedUser(t)
	s.seedPrefs(t, ready.ID)
	s.seedRating(t, ready.ID, "algebra", 3)

	// No preferences row: skipped, not failed.
	unconfigured := s.seedUser(t)
	s.seedRating(t, unconfigured.ID, "history", 2)

	// Only excluded topics: skipped.
	excluded := s.seedUser(t)
	s.seedPrefs(t, excluded.ID)
	s.seedRating(t, excluded.ID, "latin", -2)

	// Corrupt preferences stored directly, bypassing validation: fails.
	broken := s.seedUser(t)
	brokenPrefs := testutil.NewPrefs(broken.ID)
	brokenPrefs.WeekdayStartMin = 22 * 60
	brokenPrefs.WeekdayEndMin = 8 * 60
	require.NoError(t, s.prefs.Upsert(ctx, brokenPrefs))
	s.seedRating(t, broken.ID, "algebra", 1)

	// Inactive users are not visited at all.
	inactive := testutil.NewUser(testutil.WithInactive())
	require.NoError(t, s.users.Create(ctx, inactive))

	now := testWeek.AddDate(0, 0, -5)
	req := contract.CycleRequest{Now: &now, WorkerLimit: 2, UserBudget: 5 * time.Second}

	report, err := NewCycleService(s.users, s.schedule).RunCycle(ctx, req)
	require.NoError(t, err, "individual failures never abort the cycle")

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 2, report.SkippedCount)
	assert.Equal(t, 1, report.FailedCount)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, broken.ID, report.Errors[0].UserID)
	assert.NotEmpty(t, report.Errors[0].Error)
}

func TestRunCycle_ZeroWorkerLimitStillRuns(t *testing.T) {
	s := newStack(t)
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "algebra", 4)

	now := testWeek.AddDate(0, 0, -5)
	report, err := NewCycleService(s.users, s.schedule).RunCycle(context.Background(), contract.CycleRequest{Now: &now})
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
}

func TestRunCycle_EmptyUserSet(t *testing.T) {
	s := newStack(t)
	now := testWeek.AddDate(0, 0, -5)

	report, err := NewCycleService(s.users, s.schedule).RunCycle(context.Background(), contract.CycleRequest{Now: &now})
	require.NoError(t, err)
	assert.Zero(t, report.SuccessCount)
	assert.Zero(t, report.FailedCount)
	assert.Zero(t, report.SkippedCount)
	assert.Equal(t, domain.MondayOf(now).AddDate(0, 0, 7), report.WeekStart)
}
