package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{name: "nil", input: nil, expected: UnknownClockTime},
		{name: "empty", input: strPtr(""), expected: UnknownClockTime},
		{name: "ISO UTC", input: strPtr("2025-12-24T14:05:00Z"), expected: "14:05"},
		{name: "ISO with offset", input: strPtr("2025-12-24T14:05:00+01:00"), expected: "14:05"},
		{name: "compact", input: strPtr("1405"), expected: "14:05"},
		{name: "already formatted", input: strPtr("14:05"), expected: "14:05"},
		{name: "with seconds", input: strPtr("14:05:33"), expected: "14:05"},
		{name: "date only", input: strPtr("2025-12-24"), expected: UnknownClockTime},
		{name: "separator only", input: strPtr("T"), expected: UnknownClockTime},
		{name: "garbage", input: strPtr("soon"), expected: UnknownClockTime},
		{name: "short compact", input: strPtr("905"), expected: UnknownClockTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClockTime(tt.input))
		})
	}
}

func TestClockDurationMinutes(t *testing.T) {
	tests := []struct {
		name            string
		departure       string
		arrival         string
		fallbackSeconds int
		expected        int
	}{
		{name: "same hour", departure: "13:00", arrival: "13:20", expected: 20},
		{name: "across hours", departure: "12:45", arrival: "14:05", expected: 80},
		{name: "over midnight", departure: "23:50", arrival: "00:10", expected: 20},
		{name: "zero length", departure: "09:00", arrival: "09:00", expected: 0},
		{name: "unknown departure uses fallback", departure: UnknownClockTime, arrival: "13:00", fallbackSeconds: 1500, expected: 25},
		{name: "negative fallback is clamped", departure: "x", arrival: "y", fallbackSeconds: -60, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClockDurationMinutes(tt.departure, tt.arrival, tt.fallbackSeconds))
		})
	}
}

func TestClockOrdinal(t *testing.T) {
	t.Run("after midnight counts as the next day", func(t *testing.T) {
		ordinal := NewClockOrdinal("00:10", 23*60)

		assert.True(t, ordinal.Known)
		assert.Equal(t, 1, ordinal.DayOffset)
		assert.Equal(t, 24*60+10, ordinal.Value())
	})

	t.Run("before midnight counts as the previous day", func(t *testing.T) {
		ordinal := NewClockOrdinal("23:50", 10)

		assert.True(t, ordinal.Known)
		assert.Equal(t, -1, ordinal.DayOffset)
		assert.Equal(t, -10, ordinal.Value())
	})

	t.Run("same day", func(t *testing.T) {
		ordinal := NewClockOrdinal("13:20", 13*60)

		assert.Equal(t, 0, ordinal.DayOffset)
		assert.Equal(t, 13*60+20, ordinal.Value())
	})

	t.Run("unknown", func(t *testing.T) {
		assert.False(t, NewClockOrdinal(UnknownClockTime, 0).Known)
	})
}
