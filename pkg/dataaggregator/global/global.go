package global

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campusvvs/navigator/pkg/config"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source/cachedresults"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source/journeyplanner"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source/stopdirectory"
	"github.com/campusvvs/navigator/pkg/dataaggregator/source/tripplanner"
	"github.com/campusvvs/navigator/pkg/efa"
	directory "github.com/campusvvs/navigator/pkg/stopdirectory"
)

type Options struct {
	Config    *config.Config
	Directory *directory.Directory

	// RedisClient enables caching of trip planner responses when set
	RedisClient *redis.Client
}

// Setup builds the aggregator with every data source registered
func Setup(opts Options) (*dataaggregator.Aggregator, error) {
	aggregator := &dataaggregator.Aggregator{}

	searchPolicy, err := opts.Config.SearchPolicy()
	if err != nil {
		return nil, err
	}
	efaTimeout, err := opts.Config.EFATimeout()
	if err != nil {
		return nil, err
	}

	stopDirectory := opts.Directory
	if stopDirectory == nil {
		stopDirectory = directory.New(nil)
	}
	aggregator.RegisterSource(stopdirectory.Source{
		Directory: stopDirectory,
	})

	aggregator.RegisterSource(journeyplanner.Source{
		Aggregator:    aggregator,
		Anchors:       opts.Config.Anchors,
		Policy:        searchPolicy,
		NumberOfTrips: opts.Config.EFA.NumberOfTrips,
	})

	var tripSource dataaggregator.DataSource = tripplanner.Source{
		Client: efa.NewClient(opts.Config.EFA.BaseURL, opts.Config.EFA.StaticParameters, efaTimeout),
	}

	if opts.RedisClient != nil {
		cacheExpiration, err := opts.Config.CacheExpiration()
		if err != nil {
			return nil, err
		}

		cachedSource := &cachedresults.Source{Upstream: tripSource}
		cachedSource.Setup(opts.RedisClient, cacheExpiration)
		tripSource = cachedSource

		log.Info().Str("expiration", cacheExpiration.String()).Msg("Caching trip planner responses in Redis")
	}

	aggregator.RegisterSource(tripSource)

	return aggregator, nil
}
