package cachedresults

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source"
	"github.com/campusvvs/navigator/pkg/efa"
)

const DefaultExpiration = 2 * time.Minute

// Source sits in front of an upstream trip source and keeps its raw responses in Redis.
// Anything going wrong with the cache falls straight through to the upstream source.
type Source struct {
	Upstream dataaggregator.DataSource

	Cache *cache.Cache[string]
}

func (s *Source) Setup(client *redis.Client, expiration time.Duration) {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	s.Cache = cache.New[string](redisStore)
}

func (s *Source) GetName() string {
	return "Cached " + s.Upstream.GetName()
}

func (s *Source) Supports() []reflect.Type {
	return s.Upstream.Supports()
}

func (s *Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	tripQuery, ok := q.(query.Trip)
	if !ok {
		return nil, source.UnsupportedSourceError
	}

	cacheKey := tripQuery.Request.CacheKey()

	if cachedValue, err := s.Cache.Get(ctx, cacheKey); err == nil {
		var tripResponse efa.TripResponse
		if err := json.Unmarshal([]byte(cachedValue), &tripResponse); err == nil {
			log.Debug().Str("key", cacheKey).Msg("Trip cache hit")
			return &tripResponse, nil
		}
	}

	log.Debug().Str("key", cacheKey).Msg("Trip cache miss")

	value, err := s.Upstream.Lookup(ctx, q)
	if err != nil {
		return value, err
	}

	tripResponse, ok := value.(*efa.TripResponse)
	if !ok || tripResponse == nil {
		return value, nil
	}

	encoded, err := json.Marshal(tripResponse)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode trip response for cache")
		return tripResponse, nil
	}

	if err := s.Cache.Set(ctx, cacheKey, string(encoded)); err != nil {
		log.Error().Err(err).Str("key", cacheKey).Msg("Failed to store trip response in cache")
	}

	return tripResponse, nil
}
