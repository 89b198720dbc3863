package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/testutil"
)

func TestReconstructSequences(t *testing.T) {
	weekStart := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	friday := weekStart.AddDate(0, 0, -3).Add(9 * time.Hour)

	sessions := []*domain.StudySession{
		// Algebra finished two of three sessions before the week.
		testutil.NewSession("u-1", "algebra", friday.AddDate(0, 0, -2), 1, 3),
		testutil.NewSession("u-1", "algebra", friday, 2, 3),
		// History completed its whole sequence.
		testutil.NewSession("u-1", "history", friday, 2, 2),
		// A session inside the target week must not count as history.
		testutil.NewSession("u-1", "algebra", weekStart.Add(9*time.Hour), 3, 3),
	}

	out := reconstructSequences(sessions, weekStart)

	require.Len(t, out, 1)
	seq, ok := out["algebra"]
	require.True(t, ok)
	assert.Equal(t, 2, seq.SessionsScheduled)
	assert.Equal(t, 3, seq.SessionsRequired)
	assert.True(t, seq.LastSessionDate.Equal(domain.DayOf(friday)))
	assert.True(t, seq.Ongoing())
}

func TestReconstructSequences_SkipsFillersAndCorruptRationales(t *testing.T) {
	weekStart := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	before := weekStart.AddDate(0, 0, -2).Add(10 * time.Hour)

	filler := &domain.StudySession{UserID: "u-1", ScheduledAt: before, DurationMin: 30}
	corrupt := testutil.NewSession("u-1", "algebra", before, 1, 3)
	corrupt.Rationale = domain.Rationale{}

	out := reconstructSequences([]*domain.StudySession{filler, corrupt}, weekStart)
	assert.Empty(t, out)
}

func TestReconstructSequences_MaxNumberWinsRegardlessOfOrder(t *testing.T) {
	weekStart := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	day := weekStart.AddDate(0, 0, -4)

	sessions := []*domain.StudySession{
		testutil.NewSession("u-1", "algebra", day.Add(15*time.Hour), 2, 3),
		testutil.NewSession("u-1", "algebra", day.Add(9*time.Hour), 1, 3),
	}

	out := reconstructSequences(sessions, weekStart)
	require.Contains(t, out, "algebra")
	assert.Equal(t, 2, out["algebra"].SessionsScheduled)
}
