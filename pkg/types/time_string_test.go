package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:05"), ts)
	assert.Equal(t, 18*60+5, ts.Minutes())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts := MustTimeString("23:50")

	next, err := ts.AddMinutes(5)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:55"), next)

	_, err = ts.AddMinutes(15)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	prev, err := MustTimeString("00:10").AddMinutes(-10)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), prev)
}

func TestAddMinutesClamped(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), MustTimeString("00:05").AddMinutesClamped(-15))
	assert.Equal(t, TimeString("23:59"), MustTimeString("23:50").AddMinutesClamped(15))
	assert.Equal(t, TimeString("18:15"), MustTimeString("18:00").AddMinutesClamped(15))
}

func TestCompare(t *testing.T) {
	a := MustTimeString("11:30")
	b := MustTimeString("14:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal(MustTimeString("11:30")))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan([]byte("22:00:00")))
	assert.Equal(t, TimeString("22:00"), ts)

	require.NoError(t, ts.Scan("11:30"))
	assert.Equal(t, TimeString("11:30"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestOn(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	got := MustTimeString("18:20").On(date)
	assert.Equal(t, time.Date(2026, 10, 19, 18, 20, 0, 0, time.UTC), got)
}
