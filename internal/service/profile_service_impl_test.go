package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
)

func newProfileSvc(s *stack) ProfileService {
	return NewProfileService(s.users, s.ratings, s.prefs, s.blocked, s.commits)
}

func TestProfileService_CreateAndListUsers(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	svc := newProfileSvc(s)

	u, err := svc.CreateUser(ctx, "Alex")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.True(t, u.Active)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alex", users[0].Name)
}

func TestProfileService_RateTopic(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	svc := newProfileSvc(s)
	user := s.seedUser(t)

	require.NoError(t, svc.RateTopic(ctx, user.ID, "algebra", 2))

	ratings, err := svc.ListRatings(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 2, ratings[0].Rating)
}

func TestProfileService_RateTopic_InvalidRating(t *testing.T) {
	s := newStack(t)
	svc := newProfileSvc(s)
	user := s.seedUser(t)

	err := svc.RateTopic(context.Background(), user.ID, "algebra", -1)
	var schedErr *contract.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, contract.ScheduleErrInvalidRating, schedErr.Code)
}

func TestProfileService_RateTopic_UnknownUser(t *testing.T) {
	s := newStack(t)
	err := newProfileSvc(s).RateTopic(context.Background(), "missing", "algebra", 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_SetPreferences_FillsDefaults(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	svc := newProfileSvc(s)
	user := s.seedUser(t)

	p := &domain.TimePreferences{
		UserID:          user.ID,
		WeekdayStartMin: 8 * 60,
		WeekdayEndMin:   21 * 60,
		UseWeekdayTimes: true,
	}
	require.NoError(t, svc.SetPreferences(ctx, p))

	got, err := svc.GetPreferences(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSessionMinutes, got.SessionMinutes)
	assert.Equal(t, domain.DefaultSlotReservePct, got.SlotReservePct)
}

func TestProfileService_SetPreferences_RejectsInvalidWindow(t *testing.T) {
	s := newStack(t)
	svc := newProfileSvc(s)
	user := s.seedUser(t)

	p := &domain.TimePreferences{
		UserID:          user.ID,
		WeekdayStartMin: 21 * 60,
		WeekdayEndMin:   8 * 60,
		UseWeekdayTimes: true,
	}
	err := svc.SetPreferences(context.Background(), p)
	var schedErr *contract.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, contract.ScheduleErrInvalidPreferences, schedErr.Code)
}

func TestProfileService_AddBlockedTime_RejectsEmptyInterval(t *testing.T) {
	s := newStack(t)
	user := s.seedUser(t)

	at := testWeek.Add(10 * time.Hour)
	err := newProfileSvc(s).AddBlockedTime(context.Background(), user.ID, &domain.BlockedInterval{Start: at, End: at})
	assert.Error(t, err)
}

func TestProfileService_AddCommitment_Validation(t *testing.T) {
	s := newStack(t)
	svc := newProfileSvc(s)
	user := s.seedUser(t)

	err := svc.AddCommitment(context.Background(), &domain.Commitment{
		UserID:      user.ID,
		Weekdays:    domain.EveryDay,
		DayStartMin: 600,
		DayEndMin:   600,
	})
	assert.Error(t, err, "empty daily window")

	err = svc.AddCommitment(context.Background(), &domain.Commitment{
		UserID:      user.ID,
		DayStartMin: 540,
		DayEndMin:   600,
	})
	assert.Error(t, err, "no active weekdays")
}

func TestProfileService_WeekAvailability_FoldsCommitments(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	svc := newProfileSvc(s)
	user := s.seedUser(t)
	s.seedPrefs(t, user.ID)

	require.NoError(t, svc.AddCommitment(ctx, &domain.Commitment{
		UserID: user.ID,
		Label:  "work",
		Weekdays: domain.WeekdayMask(0).With(time.Monday).With(time.Tuesday).
			With(time.Wednesday).With(time.Thursday).With(time.Friday),
		DayStartMin: 9 * 60,
		DayEndMin:   17 * 60,
	}))

	days, err := svc.WeekAvailability(ctx, user.ID, testWeek)
	require.NoError(t, err)
	require.Len(t, days, 7)

	// 08:00-21:00 window minus the 09:00-17:00 commitment on workdays.
	assert.Equal(t, 5*60, days[0].OpenMin)
	assert.Equal(t, 13*60, days[5].OpenMin, "Saturday stays open")
}
