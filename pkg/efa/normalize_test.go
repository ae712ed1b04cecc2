package efa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvvs/navigator/pkg/ctdf"
)

const tripResponseFixture = `{
  "journeys": [
    {
      "interchanges": 1,
      "duration": "1500",
      "legs": [
        {
          "origin": {
            "id": "de:08111:6118",
            "name": "Stadtmitte",
            "departureTimePlanned": "2025-03-10T12:00:00Z",
            "departureTimeEstimated": "2025-03-10T12:02:00Z"
          },
          "destination": {
            "name": "Hauptbahnhof",
            "arrivalTimePlanned": "2025-03-10T12:06:00Z"
          },
          "transportation": {"name": "Stadtbahn U7", "number": "U7"}
        },
        {
          "origin": {"name": "Hauptbahnhof", "departureTimePlanned": "2025-03-10T12:07:00Z"},
          "destination": {"name": 12, "arrivalTimePlanned": "2025-03-10T12:25:00Z"},
          "arrivalTimeEstimated": "2025-03-10T12:27:00Z"
        }
      ]
    },
    {
      "interchanges": "zero",
      "legs": []
    },
    {
      "interchanges": 0,
      "duration": 600,
      "legs": [
        {
          "origin": {"name": "Stadtmitte"},
          "destination": {"name": "Rosenberg-/Seidenstraße"},
          "transportation": {"name": "Bus 43", "number": {"text": "43"}}
        }
      ]
    }
  ]
}`

func TestTripResponseNormalize(t *testing.T) {
	var response TripResponse
	require.NoError(t, json.Unmarshal([]byte(tripResponseFixture), &response))

	journeys := response.Normalize()
	require.Len(t, journeys, 2)

	first := journeys[0]
	assert.Equal(t, "12:02", first.Departure)
	assert.Equal(t, "12:27", first.Arrival)
	assert.Equal(t, 25, first.Duration)
	assert.Equal(t, 1, first.Interchanges)
	assert.Equal(t, []ctdf.Section{
		{Line: "U7", From: "Stadtmitte", To: "Hauptbahnhof", Departure: "12:02", Arrival: "12:06"},
		{Line: ctdf.WalkingLine, From: "Hauptbahnhof", To: ctdf.UnknownStopName, Departure: "12:07", Arrival: "12:27"},
	}, first.Sections)

	second := journeys[1]
	assert.Equal(t, ctdf.UnknownClockTime, second.Departure)
	assert.Equal(t, ctdf.UnknownClockTime, second.Arrival)
	assert.Equal(t, 10, second.Duration)
	assert.Equal(t, ctdf.WalkingLine, second.Sections[0].Line)
	assert.Equal(t, "Rosenberg-/Seidenstraße", second.Sections[0].To)
}

func TestTripResponseNormalizeEmpty(t *testing.T) {
	var nilResponse *TripResponse
	assert.NotNil(t, nilResponse.Normalize())
	assert.Empty(t, nilResponse.Normalize())

	var response TripResponse
	require.NoError(t, json.Unmarshal([]byte(`{"journeys": null}`), &response))
	assert.Empty(t, response.Normalize())
}

func TestRawLegSectionTimePriority(t *testing.T) {
	tests := []struct {
		name     string
		leg      RawLeg
		expected string
	}{
		{
			name: "leg estimated wins",
			leg: RawLeg{
				DepartureTimeEstimated: NewRawString("1010"),
				DepartureTimePlanned:   NewRawString("1000"),
				Origin:                 &RawLocation{DepartureTimeEstimated: NewRawString("0955")},
			},
			expected: "10:10",
		},
		{
			name: "leg planned before origin",
			leg: RawLeg{
				DepartureTimePlanned: NewRawString("1000"),
				Origin:               &RawLocation{DepartureTimeEstimated: NewRawString("0955")},
			},
			expected: "10:00",
		},
		{
			name: "origin estimated before origin planned",
			leg: RawLeg{
				Origin: &RawLocation{
					DepartureTimeEstimated: NewRawString("0955"),
					DepartureTimePlanned:   NewRawString("0950"),
				},
			},
			expected: "09:55",
		},
		{
			name: "empty strings are skipped",
			leg: RawLeg{
				DepartureTimeEstimated: NewRawString(""),
				Origin:                 &RawLocation{DepartureTimePlanned: NewRawString("09:50")},
			},
			expected: "09:50",
		},
		{
			name:     "nothing",
			leg:      RawLeg{},
			expected: ctdf.UnknownClockTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := tt.leg.Section()

			assert.Equal(t, tt.expected, section.Departure)
			assert.Equal(t, ctdf.UnknownStopName, section.To)
		})
	}
}

func TestRawTypes(t *testing.T) {
	var location RawLocation
	require.NoError(t, json.Unmarshal([]byte(`{"id": null, "name": ["x"], "departureTimePlanned": "0900"}`), &location))

	assert.False(t, location.ID.Present())
	assert.False(t, location.Name.Present())
	assert.Equal(t, "fallback", location.Name.Or("fallback"))
	assert.Equal(t, "0900", location.DepartureTimePlanned.Or(""))

	var journey RawJourney
	require.NoError(t, json.Unmarshal([]byte(`{"interchanges": "2", "duration": 90.0}`), &journey))

	assert.Equal(t, 2, journey.Interchanges.Or(0))
	assert.Equal(t, 90, journey.Duration.Or(0))

	require.NoError(t, json.Unmarshal([]byte(`{"interchanges": true}`), &journey))
	assert.Equal(t, -1, journey.Interchanges.Or(-1))
}

func TestFlexibleIntOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "huge", input: `1e300`},
		{name: "huge negative", input: `-1e300`},
		{name: "huge string", input: `"1e300"`},
		{name: "infinity string", input: `"Inf"`},
		{name: "not a number string", input: `"NaN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value FlexibleInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &value))

			assert.Nil(t, value.Value)
			assert.Equal(t, 7, value.Or(7))
		})
	}
}
