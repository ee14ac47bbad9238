package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/nx-serverless/sls-deploy/cli/command"
)

var version string

func main() {
	cli.AppHelpTemplate = helpTextTemplate

	app := cli.NewApp()

	app.Version = version

	app.Name = "sls-deploy"
	app.HelpName = "sls-deploy"
	app.Usage = "Deploy Nx workspace projects with the Serverless Framework"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
		cli.StringFlag{
			Name:   "log-file",
			EnvVar: "SLS_DEPLOY_LOG_FILE",
			Usage:  "Also write logs to this file, rotated by size",
		},
	}

	app.Commands = []cli.Command{
		command.NewDeployCommand().Cli(),
		{
			Name:  "version",
			Usage: "Shows the version of sls-deploy",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
