package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_DefaultConfig(t *testing.T) {
	config := DefaultTimeSlotConfig

	slots, err := config.GenerateSlots()
	require.NoError(t, err)

	// 24 дневных слота по 30 минут плюс одна ночная сессия
	require.Len(t, slots, 25)

	assert.Equal(t, SlotLabel("09:00-09:30"), slots[0])
	assert.Equal(t, SlotLabel("20:30-21:00"), slots[23])
	assert.Equal(t, SlotLabel("21:00-09:00"), slots[24])
}

func TestGenerateSlots_SortedAndUniqueStarts(t *testing.T) {
	config := DefaultTimeSlotConfig

	slots, err := config.GenerateSlots()
	require.NoError(t, err)

	seen := make(map[string]struct{}, len(slots))
	var prevStart string
	for _, slot := range slots {
		start, _, err := slot.Parse()
		require.NoError(t, err)

		_, dup := seen[start.String()]
		assert.False(t, dup, "duplicate start %s", start)
		seen[start.String()] = struct{}{}

		assert.GreaterOrEqual(t, start.String(), prevStart)
		prevStart = start.String()
	}
}

func TestGenerateSlots_NightWindowWrapsMidnight(t *testing.T) {
	config := TimeSlotConfig{
		Name:                 "test",
		DayStart:             "10:00",
		DayEnd:               "18:00",
		DayIntervalMinutes:   60,
		NightStart:           "22:00",
		NightEnd:             "06:00",
		NightIntervalMinutes: 120,
	}

	slots, err := config.GenerateSlots()
	require.NoError(t, err)

	// 8 дневных + 4 ночных (22:00-00:00, 00:00-02:00 ... рендерится по модулю суток)
	require.Len(t, slots, 12)
	assert.Contains(t, slots, SlotLabel("22:00-24:00"))
	assert.Contains(t, slots, SlotLabel("00:00-02:00"))
	assert.Contains(t, slots, SlotLabel("04:00-06:00"))
}

func TestGenerateSlots_EndAtMidnightRendersAs2400(t *testing.T) {
	config := TimeSlotConfig{
		Name:                 "test",
		DayStart:             "09:00",
		DayEnd:               "12:00",
		DayIntervalMinutes:   60,
		NightStart:           "20:00",
		NightEnd:             "00:00",
		NightIntervalMinutes: 240,
	}

	slots, err := config.GenerateSlots()
	require.NoError(t, err)
	assert.Contains(t, slots, SlotLabel("20:00-24:00"))
}

func TestValidate_RaggedIntervalRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *TimeSlotConfig)
	}{
		{
			name:   "day interval does not divide window",
			mutate: func(c *TimeSlotConfig) { c.DayIntervalMinutes = 50 },
		},
		{
			name:   "night interval does not divide window",
			mutate: func(c *TimeSlotConfig) { c.NightIntervalMinutes = 700 },
		},
		{
			name:   "zero day interval",
			mutate: func(c *TimeSlotConfig) { c.DayIntervalMinutes = 0 },
		},
		{
			name:   "negative night interval",
			mutate: func(c *TimeSlotConfig) { c.NightIntervalMinutes = -30 },
		},
		{
			name:   "day window wraps midnight",
			mutate: func(c *TimeSlotConfig) { c.DayStart = "21:00"; c.DayEnd = "09:00" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultTimeSlotConfig
			tt.mutate(&config)
			require.ErrorIs(t, config.Validate(), ErrInvalidTimeSlotConfig)
		})
	}
}

func TestContainsSlot(t *testing.T) {
	config := DefaultTimeSlotConfig

	ok, err := config.ContainsSlot("09:00-09:30")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = config.ContainsSlot("21:00-09:00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = config.ContainsSlot("09:15-09:45")
	require.NoError(t, err)
	assert.False(t, ok)
}
