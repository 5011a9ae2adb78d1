package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2025-01-06", "start_date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseISODate("", "start_date")
	require.EqualError(t, err, "start_date is required")

	_, err = ParseISODate("06/01/2025", "end_date")
	require.EqualError(t, err, "end_date must be ISO date (YYYY-MM-DD)")
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("09:30", "start_time")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "09:30", got.Format("15:04"))

	// seconds are accepted but truncated
	got, err = ParseClockTime("09:30:59", "start_time")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", got.Format("15:04:05"))

	// empty means absent
	got, err = ParseClockTime("  ", "start_time")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseClockTime("9am", "end_time")
	require.EqualError(t, err, "end_time must be HH:MM (24h)")

	_, err = ParseClockTime("24:00", "end_time")
	require.Error(t, err)
}

func TestParseOptionalFloat(t *testing.T) {
	got, err := ParseOptionalFloat("12.5", "latitude")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 12.5, *got, 1e-9)

	got, err = ParseOptionalFloat("", "latitude")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseOptionalFloat("north", "latitude")
	require.EqualError(t, err, "latitude must be a number")

	_, err = ParseOptionalFloat("NaN", "latitude")
	require.EqualError(t, err, "latitude must be a number")
}

func TestCoerceOptionalFloat(t *testing.T) {
	got, err := CoerceOptionalFloat(nil, "longitude")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = CoerceOptionalFloat(12.5, "longitude")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 12.5, *got, 1e-9)

	got, err = CoerceOptionalFloat("-7.25", "longitude")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -7.25, *got, 1e-9)

	got, err = CoerceOptionalFloat("", "longitude")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = CoerceOptionalFloat(true, "longitude")
	require.EqualError(t, err, "longitude must be a number")

	_, err = CoerceOptionalFloat("east", "longitude")
	require.EqualError(t, err, "longitude must be a number")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "", FormatClock(nil))

	v := time.Date(0, 1, 1, 16, 5, 0, 0, time.UTC)
	assert.Equal(t, "16:05", FormatClock(&v))
}
