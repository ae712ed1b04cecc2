package ctdf

import (
	"golang.org/x/exp/slices"
)

// RankJourneys orders journeys best first and cuts them down to limit.
//
// Journeys to the campus are ordered by latest arrival, as that leaves the most time
// before the requested arrival. Journeys from the campus are ordered by earliest departure.
// Times are compared relative to referenceMinutes so a journey past midnight sorts after
// one before it. Journeys without a usable time always go last.
func RankJourneys(journeys []*Journey, direction Direction, referenceMinutes int, limit int) []*Journey {
	ranked := make([]*Journey, len(journeys))
	copy(ranked, journeys)

	ordinals := make(map[*Journey]ClockOrdinal, len(ranked))
	for _, journey := range ranked {
		ordinals[journey] = NewClockOrdinal(journey.RankTime(direction), referenceMinutes)
	}

	slices.SortStableFunc(ranked, func(a, b *Journey) int {
		ordinalA := ordinals[a]
		ordinalB := ordinals[b]

		switch {
		case !ordinalA.Known && !ordinalB.Known:
			return 0
		case !ordinalA.Known:
			return 1
		case !ordinalB.Known:
			return -1
		}

		if direction.ArriveBy() {
			return ordinalB.Value() - ordinalA.Value()
		}

		return ordinalA.Value() - ordinalB.Value()
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
