package journeyplanner

import (
	"context"
	"reflect"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source"
)

const DefaultLimit = 5

const defaultMaxConcurrency = 8

type Source struct {
	// Aggregator is used to look up the individual trips for each anchor stop
	Aggregator *dataaggregator.Aggregator

	Anchors       []ctdf.Stop
	Policy        ctdf.SearchPolicy
	NumberOfTrips int

	MaxConcurrency int
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.Journey{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.JourneySearch:
		return s.JourneySearchQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
