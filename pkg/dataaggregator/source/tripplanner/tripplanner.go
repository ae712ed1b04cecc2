package tripplanner

import (
	"context"
	"reflect"

	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source"
	"github.com/campusvvs/navigator/pkg/efa"
)

// Source answers trip queries directly from the EFA trip planner
type Source struct {
	Client *efa.Client
}

func (s Source) GetName() string {
	return "EFA Trip Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(efa.TripResponse{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Trip:
		return s.Client.Trip(ctx, q.Request)
	default:
		return nil, source.UnsupportedSourceError
	}
}
