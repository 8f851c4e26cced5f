package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30", "09:60", "24:00", "25:00", "0930", "", "ab:cd"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidFormat, "value %q", invalid)
	}
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	m, err := TimeString("00:00").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("19:45").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 19*60+45, m)

	// "24:00" допустимо как арифметический конец дня
	m, err = TimeString("24:00").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 1440, m)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))

	assert.True(t, TimeString("21:00").IsAfter("20:59"))
	assert.False(t, TimeString("21:00").IsAfter("21:00"))

	// Некорректный формат никогда не "раньше"
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("19:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("21:00"), got)

	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("00:10").AddMinutes(-11)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 6, 15, 13, 45, 12, 0, time.UTC)

	got, err := TimeString("19:00").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC), got)

	// Время и зона исходной даты игнорируются, берется только день
	got, err = TimeString("00:00").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL TIME приходит с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("22:15")))
	assert.Equal(t, TimeString("22:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
