package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
	"github.com/alexanderramin/revisio/internal/testutil"
)

// stack wires real repositories and services over an in-memory database.
type stack struct {
	database *sql.DB
	users    *repository.SQLiteUserRepo
	ratings  *repository.SQLiteRatingRepo
	prefs    *repository.SQLitePreferencesRepo
	blocked  *repository.SQLiteBlockedRepo
	commits  *repository.SQLiteCommitmentRepo
	sessions *repository.SQLiteSessionRepo
	uow      db.UnitOfWork
	schedule ScheduleService
}

func newStack(t *testing.T) *stack {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := &stack{
		database: database,
		users:    repository.NewSQLiteUserRepo(database),
		ratings:  repository.NewSQLiteRatingRepo(database),
		prefs:    repository.NewSQLitePreferencesRepo(database),
		blocked:  repository.NewSQLiteBlockedRepo(database),
		commits:  repository.NewSQLiteCommitmentRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
	s.schedule = NewScheduleService(s.ratings, s.prefs, s.blocked, s.commits, s.sessions, s.uow)
	return s
}

func (s *stack) seedUser(t *testing.T) *domain.User {
	t.Helper()
	u := testutil.NewUser()
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

func (s *stack) seedPrefs(t *testing.T, userID string, opts ...testutil.PrefsOption) {
	t.Helper()
	require.NoError(t, s.prefs.Upsert(context.Background(), testutil.NewPrefs(userID, opts...)))
}

func (s *stack) seedRating(t *testing.T, userID, topicID string, rating int) {
	t.Helper()
	require.NoError(t, s.ratings.Upsert(context.Background(), &domain.TopicRating{
		UserID: userID, TopicID: topicID, Rating: rating,
	}))
}

var testWeek = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC) // a Monday

func TestGenerateForUser_PersistsRealSessionsOnly(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "algebra", 1)
	s.seedRating(t, user.ID, "history", 5)

	resp, err := s.schedule.GenerateForUser(ctx, user.ID, testWeek)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Persisted, "3 algebra + 1 history")
	assert.False(t, resp.Infeasible)
	assert.Empty(t, resp.Blockers)

	fillers := 0
	for _, e := range resp.Entries {
		if e.TopicID == "" {
			fillers++
			assert.Empty(t, e.SessionID, "fillers carry no ID")
		} else {
			assert.NotEmpty(t, e.SessionID)
			assert.NoError(t, e.Rationale.Validate())
		}
	}
	assert.Greater(t, fillers, 0, "breaks appear in the response")

	persisted, err := s.sessions.ListByUserInRange(ctx, user.ID, testWeek, testWeek.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, persisted, 4)
	for _, p := range persisted {
		assert.False(t, p.IsFiller(), "breaks are never persisted")
		assert.Equal(t, domain.SessionScheduled, p.Status)
	}
}

func TestGenerateForUser_RegenerationReplacesWeek(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "algebra", 2)

	first, err := s.schedule.GenerateForUser(ctx, user.ID, testWeek)
	require.NoError(t, err)
	second, err := s.schedule.GenerateForUser(ctx, user.ID, testWeek)
	require.NoError(t, err)

	assert.Equal(t, first.Persisted, second.Persisted)

	persisted, err := s.sessions.ListByUserInRange(ctx, user.ID, testWeek, testWeek.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Len(t, persisted, first.Persisted, "regeneration does not accumulate sessions")
}

func TestGenerateForUser_ContinuesOngoingSequence(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "algebra", 1)

	// Two of three sessions already happened the week before, the last one
	// on the preceding Friday.
	prevFriday := testWeek.AddDate(0, 0, -3).Add(9 * time.Hour)
	require.NoError(t, s.sessions.Create(ctx, testutil.NewSession(user.ID, "algebra", prevFriday.AddDate(0, 0, -2), 1, 3)))
	require.NoError(t, s.sessions.Create(ctx, testutil.NewSession(user.ID, "algebra", prevFriday, 2, 3)))

	resp, err := s.schedule.GenerateForUser(ctx, user.ID, testWeek)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Persisted, "only the final session of the sequence remains")
	persisted, err := s.sessions.ListByUserInRange(ctx, user.ID, testWeek, testWeek.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 3, persisted[0].Rationale.SessionNumber)
	assert.Equal(t, 3, persisted[0].Rationale.SessionTotal)

	// Prior-week history is untouched by the full replace.
	history, err := s.sessions.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestGenerateForUser_NothingToSchedule(t *testing.T) {
	s := newStack(t)
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "latin", -2)

	_, err := s.schedule.GenerateForUser(context.Background(), user.ID, testWeek)
	assert.ErrorIs(t, err, ErrNothingToSchedule)
}

func TestGenerateForUser_MissingPreferences(t *testing.T) {
	s := newStack(t)
	user := s.seedUser(t)
	s.seedRating(t, user.ID, "algebra", 1)

	_, err := s.schedule.GenerateForUser(context.Background(), user.ID, testWeek)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGenerateForUser_FullyBlockedWeekIsInfeasible(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)
	s.seedRating(t, user.ID, "algebra", 2)
	require.NoError(t, s.blocked.Create(ctx, user.ID, &domain.BlockedInterval{
		Start: testWeek,
		End:   testWeek.AddDate(0, 0, 7),
	}))

	resp, err := s.schedule.GenerateForUser(ctx, user.ID, testWeek)
	require.NoError(t, err, "insufficient capacity is a result, not an error")

	assert.True(t, resp.Infeasible)
	assert.Zero(t, resp.Persisted)
	assert.Empty(t, resp.Entries)
	assert.NotEmpty(t, resp.Blockers)
}

func TestGenerate_DryRunPersistsNothing(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	user := s.seedUser(t)

	req := contract.NewGenerateRequest(user.ID, testWeek)
	req.Ratings = map[string]int{"algebra": 1}
	req.Preferences = *testutil.NewPrefs(user.ID)
	req.DryRun = true

	resp, err := s.schedule.Generate(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Entries)
	assert.Zero(t, resp.Persisted)

	persisted, err := s.sessions.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	base := func() contract.GenerateRequest {
		req := contract.NewGenerateRequest("u-1", testWeek)
		req.Ratings = map[string]int{"algebra": 1}
		req.Preferences = *testutil.NewPrefs("u-1")
		req.DryRun = true
		return req
	}

	tests := []struct {
		name   string
		mutate func(*contract.GenerateRequest)
		code   contract.ScheduleErrorCode
	}{
		{"tuesday week start", func(r *contract.GenerateRequest) {
			r.WeekStart = testWeek.AddDate(0, 0, 1)
		}, contract.ScheduleErrInvalidWeekStart},
		{"mid morning week start", func(r *contract.GenerateRequest) {
			r.WeekStart = testWeek.Add(9 * time.Hour)
		}, contract.ScheduleErrInvalidWeekStart},
		{"off grid duration", func(r *contract.GenerateRequest) {
			r.SessionMinutes = 45
		}, contract.ScheduleErrInvalidDuration},
		{"inverted window", func(r *contract.GenerateRequest) {
			r.Preferences.WeekdayStartMin = 22 * 60
		}, contract.ScheduleErrInvalidPreferences},
		{"out of range rating", func(r *contract.GenerateRequest) {
			r.Ratings["algebra"] = 9
		}, contract.ScheduleErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			_, err := s.schedule.Generate(ctx, req)
			var schedErr *contract.ScheduleError
			require.ErrorAs(t, err, &schedErr)
			assert.Equal(t, tt.code, schedErr.Code)
		})
	}
}

func TestGenerate_DefaultsSessionMinutesFromPreferences(t *testing.T) {
	s := newStack(t)
	user := s.seedUser(t)

	req := contract.NewGenerateRequest(user.ID, testWeek)
	req.Ratings = map[string]int{"algebra": 5}
	req.Preferences = *testutil.NewPrefs(user.ID, testutil.WithSessionMinutes(90))
	req.SessionMinutes = 0
	req.DryRun = true

	resp, err := s.schedule.Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Entries)
	assert.Equal(t, 90, resp.Entries[0].DurationMin)
}

func TestGenerate_RollbackOnPersistFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	users := repository.NewSQLiteUserRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	user := testutil.NewUser()
	require.NoError(t, users.Create(ctx, user))

	// Keep a session from a previous generation in the target week so the
	// rollback has visible effect.
	existing := testutil.NewSession(user.ID, "algebra", testWeek.Add(9*time.Hour), 1, 1)
	require.NoError(t, sessions.Create(ctx, existing))

	// Exec 1 is the DeleteRange, exec 2 the first insert.
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	svc := NewScheduleService(
		repository.NewSQLiteRatingRepo(database),
		repository.NewSQLitePreferencesRepo(database),
		repository.NewSQLiteBlockedRepo(database),
		repository.NewSQLiteCommitmentRepo(database),
		sessions,
		failing,
	)

	req := contract.NewGenerateRequest(user.ID, testWeek)
	req.Ratings = map[string]int{"history": 5}
	req.Preferences = *testutil.NewPrefs(user.ID)

	_, err := svc.Generate(ctx, req)
	require.Error(t, err)

	remaining, listErr := sessions.ListByUser(ctx, user.ID)
	require.NoError(t, listErr)
	require.Len(t, remaining, 1, "failed replace leaves the old week intact")
	assert.Equal(t, existing.ID, remaining[0].ID)
}
