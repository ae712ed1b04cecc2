package api

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/campusvvs/navigator/pkg/api/routes"
	"github.com/campusvvs/navigator/pkg/auth"
	"github.com/campusvvs/navigator/pkg/dataaggregator/global"
	"github.com/campusvvs/navigator/pkg/database"
	"github.com/campusvvs/navigator/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: append(global.Flags(),
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:    "timetable-url",
						Value:   routes.DefaultTimetableBaseURL,
						Usage:   "lecture timetable API the timetable route forwards to",
						EnvVars: []string{"NAVIGATOR_TIMETABLE_URL"},
					},
				),
				Action: func(c *cli.Context) error {
					aggregator, cfg, err := global.SetupFromCLI(c)
					if err != nil {
						return err
					}

					location, err := cfg.Location()
					if err != nil {
						return err
					}

					store, err := database.Connect(context.Background())
					if err != nil {
						return err
					}
					defer store.Close(context.Background())

					authenticator, err := auth.FromEnvironment(util.GetPrefixedEnvironmentVariables("NAVIGATOR_"))
					if err != nil {
						return err
					}

					log.Info().Str("listen", c.String("listen")).Msg("Starting web API")

					return SetupServer(c.String("listen"), Dependencies{
						Aggregator:    aggregator,
						Store:         store,
						Authenticator: authenticator,
						Timetable: routes.TimetableProxy{
							BaseURL: c.String("timetable-url"),
						},
						ResultLimit: cfg.Search.Limit,
						Location:    location,
					})
				},
			},
		},
	}
}
