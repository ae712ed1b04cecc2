package journeyplanner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
	"github.com/campusvvs/navigator/pkg/efa"
)

// JourneySearchQuery runs the search against every anchor stop and returns the best journeys overall.
// An anchor whose trip request fails just doesn't contribute any journeys.
func (s Source) JourneySearchQuery(ctx context.Context, q query.JourneySearch) ([]*ctdf.Journey, error) {
	if err := q.Request.Validate(); err != nil {
		return nil, err
	}

	if s.Policy.HasClockCorrection() {
		log.Warn().
			Int("minutes", s.Policy.ClockCorrectionMinutes(time.Now())).
			Msg("Applying upstream clock correction to search time")
	}

	searchTime, err := s.Policy.Resolve(q.Request)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	maxConcurrency := s.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}

	anchorJourneys := make([][]*ctdf.Journey, len(s.Anchors))

	p := pool.New().WithMaxGoroutines(maxConcurrency)
	for i, anchor := range s.Anchors {
		i, anchor := i, anchor // per-iteration copy (go directive < 1.22)
		p.Go(func() {
			anchorJourneys[i] = s.anchorJourneys(ctx, anchor, q.Request, searchTime)
		})
	}
	p.Wait()

	var journeys []*ctdf.Journey
	for _, anchorJourney := range anchorJourneys {
		journeys = append(journeys, anchorJourney...)
	}

	return ctdf.RankJourneys(journeys, q.Request.Direction, searchTime.Minutes(), limit), nil
}

func (s Source) anchorJourneys(ctx context.Context, anchor ctdf.Stop, request ctdf.SearchRequest, searchTime ctdf.SearchTime) []*ctdf.Journey {
	origin, destination := request.Direction.Endpoints(request.UserStopID, anchor.ID)

	tripResponse, err := dataaggregator.Lookup[*efa.TripResponse](ctx, s.Aggregator, query.Trip{
		Request: efa.TripRequest{
			OriginStopID:      origin,
			DestinationStopID: destination,
			Date:              searchTime.Date,
			Time:              searchTime.Time,
			ArriveBy:          request.Direction.ArriveBy(),
			NumberOfTrips:     s.NumberOfTrips,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("anchor", anchor.ID).Msg("Failed to get trips for anchor stop")
		return nil
	}

	journeys := tripResponse.Normalize()

	log.Debug().
		Str("anchor", anchor.ID).
		Int("journeys", len(journeys)).
		Msg("Normalised anchor trips")

	return journeys
}
