package command

import (
	"github.com/urfave/cli"

	"github.com/nx-serverless/sls-deploy/cli/flags"
	"github.com/nx-serverless/sls-deploy/executor"
	"github.com/nx-serverless/sls-deploy/factory"
	"github.com/nx-serverless/sls-deploy/orchestrator"
	"github.com/nx-serverless/sls-deploy/workspace"
)

type DeployCommand struct {
}

func NewDeployCommand() DeployCommand {
	return DeployCommand{}
}

func (d DeployCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Install, stage and deploy projects with the Serverless Framework",
		Action:  d.Action,
		Before:  d.validateFlags,
		Flags: []cli.Flag{
			cli.StringSliceFlag{
				Name:   "project, p",
				EnvVar: "SLS_DEPLOY_PROJECT",
				Usage:  "Name of the project to deploy (repeatable)",
			},
			cli.StringFlag{
				Name:   "stage, s",
				EnvVar: "SLS_STAGE",
				Usage:  "Deployment stage passed to the deploy command as --stage",
			},
			cli.StringFlag{
				Name:  "workspace, w",
				Value: workspace.DefaultFileName,
				Usage: "Workspace file listing the projects, relative to --root",
			},
			cli.StringFlag{
				Name:  "root",
				Value: ".",
				Usage: "Workspace root directory",
			},
			cli.StringFlag{
				Name:  "dist",
				Value: "dist",
				Usage: "Compiled output directory, relative to --root",
			},
			cli.StringFlag{
				Name:   "install-command",
				EnvVar: "SLS_DEPLOY_INSTALL_COMMAND",
				Usage:  "Command that installs dependencies (default: npm install)",
			},
			cli.StringFlag{
				Name:   "deploy-command",
				EnvVar: "SLS_DEPLOY_DEPLOY_COMMAND",
				Usage:  "Command that deploys the service (default: sls deploy)",
			},
			cli.BoolFlag{
				Name:  "strict-exit-code",
				Usage: "Also fail when a command exits non-zero with an empty stderr",
			},
			cli.IntFlag{
				Name:  "parallel",
				Value: 1,
				Usage: "Maximum number of projects to deploy at once",
			},
		},
	}
}

func (d DeployCommand) validateFlags(c *cli.Context) error {
	if err := flags.ValidateSlices([]string{"project"}, c); err != nil {
		return err
	}
	return flags.Validate([]string{"workspace", "root", "dist"}, c)
}

func (d DeployCommand) Action(c *cli.Context) error {
	logger, logFile := factory.BuildLogger(factory.LoggerConfig{
		Debug:   c.GlobalBool("debug"),
		LogFile: c.GlobalString("log-file"),
	})
	defer logFile.Close()

	deployer, err := factory.BuildDeployer(factory.DeployConfig{
		RootDir:        c.String("root"),
		DistDir:        c.String("dist"),
		InstallCommand: c.String("install-command"),
		DeployCommand:  c.String("deploy-command"),
		StrictExitCode: c.Bool("strict-exit-code"),
	}, logger)
	if err != nil {
		return redCliError(err, orchestrator.ExitCodeForKind(orchestrator.KindConfiguration))
	}

	ws, err := factory.BuildWorkspace(c.String("workspace"), c.String("root"), logger)
	if err != nil {
		return redCliError(err, orchestrator.ExitCodeForKind(orchestrator.KindConfiguration))
	}

	options := orchestrator.Options{Stage: c.String("stage")}
	deploy := func(projectName string) orchestrator.Result {
		return deployer.Deploy(options, orchestrator.ExecutorContext{
			ProjectName: projectName,
			Workspace:   ws,
		})
	}

	executables := executor.NewProjectExecutables(deploy, c.StringSlice("project"))
	results := factory.BuildExecutor(c.Int("parallel")).Run(executables)

	return processResults(results)
}
