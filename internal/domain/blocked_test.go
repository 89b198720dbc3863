package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayMask(t *testing.T) {
	mask := WeekdayMask(0).With(time.Monday).With(time.Friday)

	assert.True(t, mask.Has(time.Monday))
	assert.True(t, mask.Has(time.Friday))
	assert.False(t, mask.Has(time.Sunday))

	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, EveryDay.Has(d))
	}
}

func TestCommitment_ActiveOn(t *testing.T) {
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	c := Commitment{
		Weekdays:  WeekdayMask(0).With(time.Monday),
		StartDate: monday,
		EndDate:   monday.AddDate(0, 0, 14),
	}

	assert.True(t, c.ActiveOn(monday))
	assert.True(t, c.ActiveOn(monday.AddDate(0, 0, 14)), "end date is inclusive")
	assert.False(t, c.ActiveOn(monday.AddDate(0, 0, 1)), "wrong weekday")
	assert.False(t, c.ActiveOn(monday.AddDate(0, 0, -7)), "before start")
	assert.False(t, c.ActiveOn(monday.AddDate(0, 0, 21)), "after end")
}

func TestCommitment_OpenEndedRange(t *testing.T) {
	c := Commitment{Weekdays: EveryDay}
	assert.True(t, c.ActiveOn(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)))
}
