package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJourney(t *testing.T) {
	assert.Nil(t, NewJourney(nil, 0, 0))

	journey := NewJourney([]Section{
		{Line: "U7", From: "Stadtmitte", To: "Hauptbahnhof", Departure: "13:00", Arrival: "13:05"},
		{Line: WalkingLine, From: "Hauptbahnhof", To: "Linden-Museum", Departure: "13:06", Arrival: "13:20"},
	}, -1, 0)

	require.NotNil(t, journey)
	assert.Equal(t, "13:00", journey.Departure)
	assert.Equal(t, "13:20", journey.Arrival)
	assert.Equal(t, 20, journey.Duration)
	assert.Equal(t, 0, journey.Interchanges)
	assert.Len(t, journey.Sections, 2)

	assert.Equal(t, "13:20", journey.RankTime(DirectionToDestination))
	assert.Equal(t, "13:00", journey.RankTime(DirectionFromDestination))
}

func TestNewJourneyUsesFallbackDuration(t *testing.T) {
	journey := NewJourney([]Section{
		{Line: "S1", Departure: UnknownClockTime, Arrival: "13:20"},
	}, 1, 1800)

	require.NotNil(t, journey)
	assert.Equal(t, 30, journey.Duration)
	assert.Equal(t, 1, journey.Interchanges)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, DirectionToDestination, ParseDirection("to_uni"))
	assert.Equal(t, DirectionFromDestination, ParseDirection("from_uni"))
	assert.Equal(t, DirectionFromDestination, ParseDirection(""))
	assert.Equal(t, DirectionFromDestination, ParseDirection("sideways"))

	assert.True(t, DirectionToDestination.ArriveBy())
	assert.False(t, DirectionFromDestination.ArriveBy())

	origin, destination := DirectionToDestination.Endpoints("user", "anchor")
	assert.Equal(t, "user", origin)
	assert.Equal(t, "anchor", destination)

	origin, destination = DirectionFromDestination.Endpoints("user", "anchor")
	assert.Equal(t, "anchor", origin)
	assert.Equal(t, "user", destination)
}

func TestNewFavouriteConnection(t *testing.T) {
	journey := NewJourney([]Section{
		{Line: "U7", From: "A", To: "B", Departure: "13:00", Arrival: "13:20"},
	}, 0, 0)

	favourite, err := NewFavouriteConnection("alice", journey)

	require.NoError(t, err)
	assert.Equal(t, "alice", favourite.Username)
	assert.Equal(t, int64(0), favourite.ID)
	assert.Equal(t, "13:00", favourite.Departure)
	assert.Equal(t, "13:20", favourite.Arrival)
	assert.Equal(t, 20, favourite.Duration)
	assert.Equal(t, journey.Sections, favourite.Sections)
}
