package ctdf

import (
	"testing"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustSearchTime(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		time      string
		direction Direction
		buffer    int
		expected  SearchTime
	}{
		{
			name:      "to campus moves earlier",
			date:      "20250310",
			time:      "0900",
			direction: DirectionToDestination,
			buffer:    15,
			expected:  SearchTime{Date: "20250310", Time: "0845"},
		},
		{
			name:      "from campus moves later",
			date:      "20250310",
			time:      "1700",
			direction: DirectionFromDestination,
			buffer:    15,
			expected:  SearchTime{Date: "20250310", Time: "1715"},
		},
		{
			name:      "to campus rolls back over midnight",
			date:      "20250101",
			time:      "0005",
			direction: DirectionToDestination,
			buffer:    10,
			expected:  SearchTime{Date: "20241231", Time: "2355"},
		},
		{
			name:      "from campus rolls forward over midnight",
			date:      "20241231",
			time:      "2355",
			direction: DirectionFromDestination,
			buffer:    10,
			expected:  SearchTime{Date: "20250101", Time: "0005"},
		},
		{
			name:      "late evening away from campus",
			date:      "20250310",
			time:      "2350",
			direction: DirectionFromDestination,
			buffer:    20,
			expected:  SearchTime{Date: "20250311", Time: "0010"},
		},
		{
			name:      "without a date",
			time:      "0930",
			direction: DirectionToDestination,
			buffer:    15,
			expected:  SearchTime{Time: "0915"},
		},
		{
			name:      "zero buffer",
			date:      "20250310",
			time:      "0930",
			direction: DirectionFromDestination,
			expected:  SearchTime{Date: "20250310", Time: "0930"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searchTime, err := AdjustSearchTime(tt.date, tt.time, tt.direction, tt.buffer)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, searchTime)
		})
	}
}

func TestAdjustSearchTimeErrors(t *testing.T) {
	_, err := AdjustSearchTime("20250310", "930", DirectionToDestination, 0)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = AdjustSearchTime("20250310", "2460", DirectionToDestination, 0)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = AdjustSearchTime("2025031", "0930", DirectionToDestination, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = AdjustSearchTime("20251310", "0930", DirectionToDestination, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = AdjustSearchTime("20250310", "0930", DirectionToDestination, -5)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestSearchTimeMinutes(t *testing.T) {
	assert.Equal(t, 13*60+5, SearchTime{Time: "1305"}.Minutes())
	assert.Equal(t, 0, SearchTime{Time: "nope"}.Minutes())
}

func mustDuration(t *testing.T, value string) iso8601.Duration {
	duration, err := iso8601.ParseISO8601(value)
	require.NoError(t, err)

	return duration
}

func TestSearchPolicyResolve(t *testing.T) {
	t.Run("safety margin is added to the buffer", func(t *testing.T) {
		policy := SearchPolicy{SafetyMargin: mustDuration(t, "PT10M")}

		searchTime, err := policy.Resolve(SearchRequest{
			Direction:     DirectionToDestination,
			UserStopID:    "de:08111:1",
			Date:          "20250310",
			Time:          "0900",
			BufferMinutes: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, SearchTime{Date: "20250310", Time: "0845"}, searchTime)
		assert.False(t, policy.HasClockCorrection())
	})

	t.Run("clock correction is applied first", func(t *testing.T) {
		policy := SearchPolicy{
			SafetyMargin:            mustDuration(t, "PT10M"),
			UpstreamClockCorrection: mustDuration(t, "PT1H"),
		}

		searchTime, err := policy.Resolve(SearchRequest{
			Direction:  DirectionToDestination,
			UserStopID: "de:08111:1",
			Date:       "20250310",
			Time:       "2330",
		})

		require.NoError(t, err)
		assert.Equal(t, SearchTime{Date: "20250311", Time: "0020"}, searchTime)
		assert.True(t, policy.HasClockCorrection())
		assert.Equal(t, 60, policy.ClockCorrectionMinutes(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("from campus", func(t *testing.T) {
		policy := SearchPolicy{SafetyMargin: mustDuration(t, "PT10M")}

		searchTime, err := policy.Resolve(SearchRequest{
			Direction:  DirectionFromDestination,
			UserStopID: "de:08111:1",
			Time:       "1650",
		})

		require.NoError(t, err)
		assert.Equal(t, SearchTime{Time: "1700"}, searchTime)
	})
}

func TestSearchRequestValidate(t *testing.T) {
	valid := SearchRequest{
		Direction:  DirectionToDestination,
		UserStopID: "de:08111:1",
		Date:       "20250310",
		Time:       "0900",
	}
	assert.NoError(t, valid.Validate())

	missingStop := valid
	missingStop.UserStopID = ""
	assert.ErrorIs(t, missingStop.Validate(), ErrMissingStop)

	badTime := valid
	badTime.Time = "9:00"
	assert.ErrorIs(t, badTime.Validate(), ErrInvalidTime)

	badDate := valid
	badDate.Date = "10.03.2025"
	assert.ErrorIs(t, badDate.Validate(), ErrInvalidDate)

	negativeBuffer := valid
	negativeBuffer.BufferMinutes = -1
	assert.ErrorIs(t, negativeBuffer.Validate(), ErrInvalidBuffer)
}
