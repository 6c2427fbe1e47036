package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	m, err := Minutes("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = Minutes("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = Minutes("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)
}

func TestMinutes_Invalid(t *testing.T) {
	_, err := Minutes("25:00")
	assert.Error(t, err)

	_, err = Minutes("9am")
	assert.Error(t, err)

	_, err = Minutes("")
	assert.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "09:30", FromMinutes(570))
	assert.Equal(t, "00:00", FromMinutes(0))
	assert.Equal(t, "23:59", FromMinutes(1439))
}

func TestFromMinutes_Wraps(t *testing.T) {
	// 1440 wraps back to midnight, negative values wrap backwards
	assert.Equal(t, "00:00", FromMinutes(1440))
	assert.Equal(t, "00:30", FromMinutes(1470))
	assert.Equal(t, "23:30", FromMinutes(-30))
}

func TestAddMinutes(t *testing.T) {
	c, err := AddMinutes("09:00", -30)
	require.NoError(t, err)
	assert.Equal(t, "08:30", c)

	c, err = AddMinutes("17:45", 45)
	require.NoError(t, err)
	assert.Equal(t, "18:30", c)
}

func TestHoursBetween(t *testing.T) {
	h, err := HoursBetween("09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 8.0, h)

	// Regression guard: long shifts spanning a half hour must not
	// overflow into day arithmetic
	h, err = HoursBetween("09:00", "20:30")
	require.NoError(t, err)
	assert.Equal(t, 11.5, h)

	h, err = HoursBetween("12:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)
}

func TestHoursBetween_NegativeDurationIsError(t *testing.T) {
	_, err := HoursBetween("17:00", "09:00")
	assert.Error(t, err)
}

func TestWeekdayOf(t *testing.T) {
	day, err := WeekdayOf("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	day, err = WeekdayOf("2026-01-11")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	_, err = WeekdayOf("05/01/2026")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	day, err = ParseWeekday("Saturday")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, day)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "wednesday", WeekdayName(time.Wednesday))
}
