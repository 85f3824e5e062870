package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mbtactl/mbtactl/pkg/config"
	"github.com/mbtactl/mbtactl/pkg/run"
)

func main() {
	if os.Getenv("MBTACTL_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("MBTACTL_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "mbtactl",
		Description: "Lists MBTA routes and stops and reports simple network statistics",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "id",
				Aliases: []string{"s", "subway", "stops", "n", "name", "i"},
				Usage:   "print all stops for the given route",
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma separated route type codes (0=Light Rail, 1=Heavy Rail, 2=Commuter Rail, 3=Bus, 4=Ferry)",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "output stops connecting two or more routes and the routes with the most and fewest stops",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "<Stop1>-<Stop2> - print the sequence of routes connecting two stops",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a yaml config file",
			},
		},

		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			return run.Execute(cfg, run.Options{
				RouteID: c.String("id"),
				Filter:  c.String("filter"),
				Stats:   c.Bool("stats"),
				Path:    c.String("path"),
			}, os.Stdout)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
