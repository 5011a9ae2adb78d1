package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDropsDateAndSeconds(t *testing.T) {
	src := time.Date(2025, 3, 14, 9, 30, 45, 999, time.Local)
	tod := From(src)
	assert.Equal(t, "09:30:00", tod.Format("15:04:05"))
	assert.Equal(t, time.UTC, tod.Location())
}

func TestParse(t *testing.T) {
	tod, err := Parse("16:45")
	require.NoError(t, err)
	assert.Equal(t, "16:45", tod.Clock())

	tod, err = Parse("16:45:30")
	require.NoError(t, err)
	assert.Equal(t, "16:45:00", tod.Format("15:04:05"))

	_, err = Parse("4pm")
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("08:15:00"))
	assert.Equal(t, "08:15", tod.Clock())

	require.NoError(t, tod.Scan(time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "23:59", tod.Clock())

	require.NoError(t, tod.Scan([]byte("07:05")))
	assert.Equal(t, "07:05", tod.Clock())

	require.Error(t, tod.Scan(42))
}

func TestValue(t *testing.T) {
	tod, err := Parse("09:00")
	require.NoError(t, err)

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", v)
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := Parse("13:05")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"13:05"`, string(b))

	var back Tod
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tod, back)
}
