package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/campusvvs/navigator/pkg/dataaggregator/source"
	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks each source that supports T in turn, moving on to the next one if a source
// reports it can't answer this particular query
func Lookup[T any](ctx context.Context, a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range a.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, returnError := dataSource.Lookup(ctx, query)

		if errors.Is(returnError, source.UnsupportedSourceError) {
			continue
		}

		if returnValue == nil {
			return empty, returnError
		}

		value, ok := returnValue.(T)
		if !ok {
			return empty, errors.New("Data Source returned an unexpected type")
		}

		return value, returnError
	}

	return empty, errors.New("Failed to find a matching Data Source for type")
}
