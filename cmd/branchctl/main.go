package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "branchctl",
		Usage: "Query Sparkasse branches and ATMs from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Env file layered under the process environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "Override the configured provider (mock, remote, postgres)",
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			detailCommand(),
			facilitiesCommand(),
			objectTypesCommand(),
			configurationCommand(),
			demoCommand(),
			seedCommand(),
			purgeCacheCommand(),
		},
	}
}
