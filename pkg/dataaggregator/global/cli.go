package global

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/campusvvs/navigator/pkg/config"
	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
	"github.com/campusvvs/navigator/pkg/redis_client"
	directory "github.com/campusvvs/navigator/pkg/stopdirectory"
	"github.com/campusvvs/navigator/pkg/util"
)

// Flags are shared by every command that needs the aggregator
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML file with anchor stops, trip planner and search settings",
			EnvVars: []string{"NAVIGATOR_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "stops",
			Value:   "haltestellen.csv",
			Usage:   "semicolon separated stop list",
			EnvVars: []string{"NAVIGATOR_STOPS_FILE"},
		},
		&cli.BoolFlag{
			Name:  "require-stops",
			Usage: "fail to start if the stop list can't be loaded",
		},
	}
}

// LoadConfig reads the config file given on the command line and applies the environment over it
func LoadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnvironment(util.GetPrefixedEnvironmentVariables("NAVIGATOR_")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetupFromCLI loads everything the aggregator needs using the shared flags
func SetupFromCLI(c *cli.Context) (*dataaggregator.Aggregator, *config.Config, error) {
	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	stopDirectory, err := directory.LoadFile(c.String("stops"), c.Bool("require-stops"))
	if err != nil {
		return nil, nil, err
	}

	var redisClient *redis.Client
	if redis_client.Enabled() {
		if err := redis_client.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		redisClient = redis_client.Client
	}

	aggregator, err := Setup(Options{
		Config:      cfg,
		Directory:   stopDirectory,
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, nil, err
	}

	return aggregator, cfg, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search for journeys between a stop and the campus",
		Flags: append(Flags(),
			&cli.StringFlag{
				Name:  "mode",
				Value: string(ctdf.DirectionToDestination),
				Usage: "to_uni or from_uni",
			},
			&cli.StringFlag{
				Name:     "stop",
				Usage:    "id of the user's stop",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "YYYYMMDD date, defaults to today",
			},
			&cli.StringFlag{
				Name:     "time",
				Usage:    "HHMM time",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "buffer",
				Usage: "extra buffer in minutes",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "number of journeys to return, defaults to the configured limit",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "print Go values instead of JSON",
			},
		),
		Action: func(c *cli.Context) error {
			aggregator, cfg, err := SetupFromCLI(c)
			if err != nil {
				return err
			}

			date := c.String("date")
			if date == "" {
				location, err := cfg.Location()
				if err != nil {
					return err
				}
				date = ctdf.TodayCompactDate(location)
			}

			limit := c.Int("limit")
			if limit <= 0 {
				limit = cfg.Search.Limit
			}

			journeys, err := dataaggregator.Lookup[[]*ctdf.Journey](context.Background(), aggregator, query.JourneySearch{
				Request: ctdf.SearchRequest{
					Direction:     ctdf.ParseDirection(c.String("mode")),
					UserStopID:    c.String("stop"),
					Date:          date,
					Time:          c.String("time"),
					BufferMinutes: c.Int("buffer"),
				},
				Limit: limit,
			})
			if err != nil {
				return err
			}

			if c.Bool("pretty") {
				pretty.Println(journeys)
				return nil
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(journeysResult(journeys))
		},
	}
}

func journeysResult(journeys []*ctdf.Journey) map[string]any {
	if journeys == nil {
		journeys = []*ctdf.Journey{}
	}

	return map[string]any{
		"journeys": journeys,
	}
}
