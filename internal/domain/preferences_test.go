package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePreferences_DayBounds(t *testing.T) {
	p := TimePreferences{
		WeekdayStartMin: 18 * 60,
		WeekdayEndMin:   21 * 60,
		WeekendStartMin: 9 * 60,
		WeekendEndMin:   17 * 60,
	}

	start, end := p.DayBounds(1) // Monday
	assert.Equal(t, 18*60, start)
	assert.Equal(t, 21*60, end)

	start, end = p.DayBounds(6) // Saturday
	assert.Equal(t, 9*60, start)
	assert.Equal(t, 17*60, end)

	p.UseWeekdayTimes = true
	start, end = p.DayBounds(0) // Sunday
	assert.Equal(t, 18*60, start)
	assert.Equal(t, 21*60, end)
}

func TestTimePreferences_Validate(t *testing.T) {
	valid := TimePreferences{
		WeekdayStartMin: 8 * 60,
		WeekdayEndMin:   21 * 60,
		UseWeekdayTimes: true,
		SessionMinutes:  60,
		SlotReservePct:  0.2,
	}
	assert.NoError(t, valid.Validate())

	inverted := valid
	inverted.WeekdayStartMin = 22 * 60
	assert.Error(t, inverted.Validate())

	missingWeekend := valid
	missingWeekend.UseWeekdayTimes = false
	assert.Error(t, missingWeekend.Validate(), "zero-length weekend window")

	badReserve := valid
	badReserve.SlotReservePct = 1.0
	assert.Error(t, badReserve.Validate())
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, min)

	min, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	for _, bad := range []string{"8", "24:00", "12:60", "ab:cd", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:30", "23:59"} {
		min, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(min))
	}
}
