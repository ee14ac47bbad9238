package orchestrator

import (
	"fmt"

	"github.com/pkg/errors"
)

type DeployerConfig struct {
	RootDir        string
	DistDir        string
	InstallCommand []string
	DeployCommand  []string
	StrictExitCode bool
}

func NewDeployer(logger Logger, runner CommandRunner, fs FileSystem, config DeployerConfig) *Deployer {
	installCommand := config.InstallCommand
	if len(installCommand) == 0 {
		installCommand = DefaultInstallCommand
	}
	deployCommand := config.DeployCommand
	if len(deployCommand) == 0 {
		deployCommand = DefaultDeployCommand
	}
	distDir := config.DistDir
	if distDir == "" {
		distDir = "dist"
	}

	validate := NewValidateProjectStep(logger)
	install := NewInstallDependenciesStep(runner, installCommand, config.StrictExitCode, logger)
	copyDescriptor := NewCopyDescriptorStep(fs, logger)
	deploy := NewDeployStep(runner, deployCommand, config.StrictExitCode, logger)

	workflow := NewWorkflow().
		Then(validate).
		Then(install).
		Then(copyDescriptor).
		Then(deploy)

	return &Deployer{
		workflow: workflow,
		logger:   logger,
		rootDir:  config.RootDir,
		distDir:  distDir,
	}
}

type Deployer struct {
	workflow *Workflow
	logger   Logger
	rootDir  string
	distDir  string
}

// Deploy installs dependencies for a project's build output, stages its
// serverless.yml and runs the deploy command. It never returns an error:
// every failure is logged and reported through Result.
func (d Deployer) Deploy(options Options, context ExecutorContext) (result Result) {
	d.logger.Info(logTag, "Executing \"sls\" (%s)...", context.ProjectName)

	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("deploy of %s aborted: %v", context.ProjectName, r)
			d.logger.Error(logTag, "%+v", err)
			result = Result{Success: false, Kind: KindUnknown, Message: err.Error(), Detail: fmt.Sprintf("%+v", err)}
		}
	}()

	session := NewSession(context.ProjectName, options.Stage, context.Workspace, d.rootDir, d.distDir)
	errs := d.workflow.Run(session)
	if errs.IsNil() {
		return Result{Success: true}
	}

	detail := errs.PrettyError(true)
	d.logger.Error(logTag, "%s", errs.Error())
	d.logger.Debug(logTag, "%s", detail)

	first := errs.First()
	return Result{
		Success: false,
		Kind:    KindOf(first),
		Message: first.Error(),
		Detail:  detail,
	}
}
