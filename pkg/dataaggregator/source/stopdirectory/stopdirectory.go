package stopdirectory

import (
	"context"
	"errors"
	"reflect"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source"
	"github.com/campusvvs/navigator/pkg/stopdirectory"
)

var ErrStopNotFound = errors.New("Could not find a matching Stop")

type Source struct {
	Directory *stopdirectory.Directory
}

func (s Source) GetName() string {
	return "Stop Directory"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Stop{}),
		reflect.TypeOf([]ctdf.Stop{}),
	}
}

func (s Source) Lookup(_ context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Stop:
		stop, found := s.Directory.ByID(q.ID)
		if !found && q.Name != "" {
			stop, found = s.Directory.ByName(q.Name)
		}

		if !found {
			return nil, ErrStopNotFound
		}

		return &stop, nil
	case query.Stops:
		return s.Directory.Search(q.Search, q.Limit), nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
