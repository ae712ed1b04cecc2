package efa

import (
	"github.com/campusvvs/navigator/pkg/ctdf"
)

// Normalize converts every journey that has at least one leg, keeping the upstream order.
// A response without any journeys gives an empty list.
func (t *TripResponse) Normalize() []*ctdf.Journey {
	journeys := []*ctdf.Journey{}
	if t == nil {
		return journeys
	}

	for i := range t.Journeys {
		if journey, ok := t.Journeys[i].Normalize(); ok {
			journeys = append(journeys, journey)
		}
	}

	return journeys
}

// Normalize converts the raw journey, returning false for a journey without legs
func (j *RawJourney) Normalize() (*ctdf.Journey, bool) {
	if len(j.Legs) == 0 {
		return nil, false
	}

	sections := make([]ctdf.Section, 0, len(j.Legs))
	for i := range j.Legs {
		sections = append(sections, j.Legs[i].Section())
	}

	journey := ctdf.NewJourney(sections, j.Interchanges.Or(0), j.Duration.Or(0))

	return journey, journey != nil
}

func (l *RawLeg) Section() ctdf.Section {
	origin := l.Origin
	if origin == nil {
		origin = &RawLocation{}
	}
	destination := l.Destination
	if destination == nil {
		destination = &RawLocation{}
	}

	line := ctdf.WalkingLine
	if l.Transportation != nil {
		line = l.Transportation.Number.Or(ctdf.WalkingLine)
	}

	// Realtime values always win over the timetable when the trip planner has them
	departure := firstPresent(l.DepartureTimeEstimated, l.DepartureTimePlanned, origin.DepartureTimeEstimated, origin.DepartureTimePlanned)
	arrival := firstPresent(l.ArrivalTimeEstimated, l.ArrivalTimePlanned, destination.ArrivalTimeEstimated, destination.ArrivalTimePlanned)

	return ctdf.Section{
		Line:      line,
		From:      origin.Name.Or(ctdf.UnknownStopName),
		To:        destination.Name.Or(ctdf.UnknownStopName),
		Departure: ctdf.FormatClockTime(departure.Value),
		Arrival:   ctdf.FormatClockTime(arrival.Value),
	}
}

func firstPresent(values ...RawString) RawString {
	for _, value := range values {
		if value.Present() {
			return value
		}
	}

	return RawString{}
}
