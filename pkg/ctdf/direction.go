package ctdf

// Direction of travel relative to the campus
type Direction string

const (
	DirectionToDestination   Direction = "to_uni"
	DirectionFromDestination Direction = "from_uni"
)

// ParseDirection treats anything other than a journey to the campus as a journey away from it
func ParseDirection(mode string) Direction {
	if Direction(mode) == DirectionToDestination {
		return DirectionToDestination
	}

	return DirectionFromDestination
}

// ArriveBy reports whether the requested time is an arrival time rather than a departure time
func (d Direction) ArriveBy() bool {
	return d == DirectionToDestination
}

// Endpoints orders the user's stop and the campus anchor into origin and destination
func (d Direction) Endpoints(userStopID string, anchorStopID string) (origin string, destination string) {
	if d == DirectionToDestination {
		return userStopID, anchorStopID
	}

	return anchorStopID, userStopID
}
