package main

import (
	"os"

	"github.com/d-bouvier/gobox/operations"
	"github.com/d-bouvier/gobox/utilities"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func main() {
	// this is where the main action of the program starts. The
	// command line interface is managed by the cli package and
	// its objects/structures. This, plus the basic configuration
	// in buildApp(), is all that's necessary for bootstrapping the
	// environment.
	app := buildApp()
	err := app.Run(os.Args)
	grip.EmergencyFatal(err)
}

func buildApp() *cli.App {
	app := cli.NewApp()

	app.Name = "gobox"
	app.Usage = "a personal scientific toolbox"
	app.Version = "0.0.1-pre"

	app.Commands = []cli.Command{
		operations.Generate(),
		operations.Convert(),
		operations.Inspect(),
		operations.Plot(),
		operations.Sync(),
	}

	// These are global options. Use this to configure logging or
	// other options independent from specific sub commands.
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: "info",
			Usage: "Specify lowest visible loglevel as string: 'emergency|alert|critical|error|warning|notice|info|debug'",
		},
	}

	app.Before = func(c *cli.Context) error {
		return errors.WithStack(utilities.SetupLogging(app.Name, c.String("level")))
	}

	return app
}
