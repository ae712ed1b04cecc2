package ctdf

// WalkingLine is the line label of a leg without any transport, eg. a footpath between stops
const WalkingLine = "Fußweg"

// UnknownStopName is used when the trip planner doesn't name a leg endpoint
const UnknownStopName = "Unbekannt"

// Section is one leg of a Journey
type Section struct {
	Line      string `groups:"basic" json:"line" bson:"line"`
	From      string `groups:"basic" json:"from" bson:"from"`
	To        string `groups:"basic" json:"to" bson:"to"`
	Departure string `groups:"basic" json:"departure" bson:"departure"`
	Arrival   string `groups:"basic" json:"arrival" bson:"arrival"`
}

// Journey is a complete connection between the user's stop and the campus
type Journey struct {
	Departure    string    `groups:"basic" json:"dep"`
	Arrival      string    `groups:"basic" json:"arr"`
	Duration     int       `groups:"basic" json:"duration"`
	Interchanges int       `groups:"basic" json:"interchanges"`
	Sections     []Section `groups:"basic" json:"sections"`
}

// NewJourney builds a Journey from its sections, taking the journey times from the first and last one.
// Returns nil if there are no sections.
func NewJourney(sections []Section, interchanges int, fallbackDurationSeconds int) *Journey {
	if len(sections) == 0 {
		return nil
	}

	departure := sections[0].Departure
	arrival := sections[len(sections)-1].Arrival

	return &Journey{
		Departure:    departure,
		Arrival:      arrival,
		Duration:     ClockDurationMinutes(departure, arrival, fallbackDurationSeconds),
		Interchanges: max(interchanges, 0),
		Sections:     sections,
	}
}

// RankTime is the time a journey is judged on when searching in the given direction
func (j *Journey) RankTime(direction Direction) string {
	if direction.ArriveBy() {
		return j.Arrival
	}

	return j.Departure
}
