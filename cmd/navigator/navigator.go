package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/campusvvs/navigator/pkg/api"
	"github.com/campusvvs/navigator/pkg/dataaggregator/global"
	"github.com/campusvvs/navigator/pkg/stopdirectory"

	_ "time/tzdata"
)

func main() {
	// A .env file is optional, the real environment always wins
	_ = godotenv.Load()

	if os.Getenv("NAVIGATOR_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("NAVIGATOR_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "navigator",
		Description: "Campus commute planner - finds public transport connections between a stop and the campus",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			global.RegisterCLI(),
			stopdirectory.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
