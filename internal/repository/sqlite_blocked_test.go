package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/testutil"
)

func TestSQLiteBlockedRepo_ListByUserInRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	user := seedUser(t, NewSQLiteUserRepo(database))
	repo := NewSQLiteBlockedRepo(database)

	weekStart := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7)

	inside := &domain.BlockedInterval{Start: weekStart.Add(10 * time.Hour), End: weekStart.Add(12 * time.Hour), Label: "dentist"}
	straddling := &domain.BlockedInterval{Start: weekStart.Add(-2 * time.Hour), End: weekStart.Add(2 * time.Hour)}
	outside := &domain.BlockedInterval{Start: weekEnd.Add(time.Hour), End: weekEnd.Add(3 * time.Hour)}
	for _, b := range []*domain.BlockedInterval{inside, straddling, outside} {
		require.NoError(t, repo.Create(ctx, user.ID, b))
		assert.NotEmpty(t, b.EventID, "create assigns an event ID")
	}

	got, err := repo.ListByUserInRange(ctx, user.ID, weekStart, weekEnd)
	require.NoError(t, err)
	require.Len(t, got, 2, "straddling intervals count, fully outside ones do not")
	assert.Equal(t, straddling.EventID, got[0].EventID)
	assert.Equal(t, "dentist", got[1].Label)
	assert.Equal(t, domain.BlockOneOff, got[1].Source)
}

func TestSQLiteBlockedRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	user := seedUser(t, NewSQLiteUserRepo(database))
	repo := NewSQLiteBlockedRepo(database)

	b := &domain.BlockedInterval{Start: time.Now().UTC(), End: time.Now().UTC().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, user.ID, b))
	require.NoError(t, repo.Delete(ctx, b.EventID))

	got, err := repo.ListByUserInRange(ctx, user.ID, b.Start.AddDate(0, 0, -1), b.End.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteCommitmentRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	user := seedUser(t, NewSQLiteUserRepo(database))
	repo := NewSQLiteCommitmentRepo(database)

	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	c := &domain.Commitment{
		UserID:      user.ID,
		Label:       "work",
		StartDate:   monday,
		EndDate:     monday.AddDate(0, 0, 60),
		Weekdays:    domain.WeekdayMask(0).With(time.Monday).With(time.Wednesday),
		DayStartMin: 9 * 60,
		DayEndMin:   17 * 60,
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *c, got[0])
}

func TestSQLiteCommitmentRepo_OpenEndedDateSurvives(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	user := seedUser(t, NewSQLiteUserRepo(database))
	repo := NewSQLiteCommitmentRepo(database)

	c := &domain.Commitment{
		UserID:      user.ID,
		Weekdays:    domain.EveryDay,
		DayStartMin: 9 * 60,
		DayEndMin:   10 * 60,
	}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].EndDate.IsZero())
}
