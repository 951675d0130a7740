package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:30", "21:00", "23:59"}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			ts, err := NewTimeStringFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, ts.String())
		})
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "noon", "12:300"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := NewTimeStringFromString(s)
			require.ErrorIs(t, err, ErrInvalidTimeString)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 10, 9, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		in   TimeString
		want int
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "21:00", want: 1260},
		{in: "23:59", want: 1439},
	}

	for _, tt := range tests {
		m, err := tt.in.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, m)
	}
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = TimeString("23:30").AddMinutes(60)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("21:00").IsAfter("09:00"))
}
