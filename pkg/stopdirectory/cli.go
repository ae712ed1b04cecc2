package stopdirectory

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	stopsFlag := &cli.StringFlag{
		Name:    "stops",
		Value:   "haltestellen.csv",
		Usage:   "semicolon separated stop list",
		EnvVars: []string{"NAVIGATOR_STOPS_FILE"},
	}

	return &cli.Command{
		Name:  "stops",
		Usage: "Inspect the stop list",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print every stop in the list",
				Flags: []cli.Flag{stopsFlag},
				Action: func(c *cli.Context) error {
					directory, err := LoadFile(c.String("stops"), true)
					if err != nil {
						return err
					}

					for _, stop := range directory.All() {
						fmt.Printf("%s\t%s\n", stop.ID, stop.Name)
					}

					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "find stops by name",
				ArgsUsage: "<term>",
				Flags: []cli.Flag{
					stopsFlag,
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("a search term is required", 1)
					}

					directory, err := LoadFile(c.String("stops"), true)
					if err != nil {
						return err
					}

					for _, stop := range directory.Search(c.Args().First(), c.Int("limit")) {
						fmt.Printf("%s\t%s\n", stop.ID, stop.Name)
					}

					return nil
				},
			},
		},
	}
}
