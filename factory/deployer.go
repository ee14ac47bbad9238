package factory

import (
	"path/filepath"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"

	"github.com/nx-serverless/sls-deploy/executor"
	"github.com/nx-serverless/sls-deploy/orchestrator"
	"github.com/nx-serverless/sls-deploy/runner"
	"github.com/nx-serverless/sls-deploy/workspace"
)

type DeployConfig struct {
	RootDir        string
	DistDir        string
	InstallCommand string
	DeployCommand  string
	StrictExitCode bool
}

func BuildDeployer(config DeployConfig, logger boshlog.Logger) (*orchestrator.Deployer, error) {
	installCommand, err := parseCommandOrDefault(config.InstallCommand, orchestrator.DefaultInstallCommand)
	if err != nil {
		return nil, errors.Wrap(err, "invalid install command")
	}

	deployCommand, err := parseCommandOrDefault(config.DeployCommand, orchestrator.DefaultDeployCommand)
	if err != nil {
		return nil, errors.Wrap(err, "invalid deploy command")
	}

	fs := boshsys.NewOsFileSystem(logger)
	cmdRunner := runner.NewCommandRunner(boshsys.NewExecCmdRunner(logger), logger)

	return orchestrator.NewDeployer(logger, cmdRunner, fs, orchestrator.DeployerConfig{
		RootDir:        config.RootDir,
		DistDir:        resolve(config.RootDir, config.DistDir),
		InstallCommand: installCommand,
		DeployCommand:  deployCommand,
		StrictExitCode: config.StrictExitCode,
	}), nil
}

// BuildWorkspace loads the workspace file, resolving a relative path
// against rootDir.
func BuildWorkspace(path, rootDir string, logger boshlog.Logger) (*workspace.Workspace, error) {
	fs := boshsys.NewOsFileSystem(logger)
	return workspace.Load(fs, resolve(rootDir, path), rootDir)
}

func BuildExecutor(parallel int) executor.Executor {
	if parallel > 1 {
		return executor.NewParallelExecutor(parallel)
	}
	return executor.NewSerialExecutor()
}

func parseCommandOrDefault(raw string, defaultCommand []string) ([]string, error) {
	if raw == "" {
		return defaultCommand, nil
	}
	return runner.ParseCommand(raw)
}

func resolve(rootDir, path string) string {
	if path == "" || filepath.IsAbs(path) || rootDir == "" {
		return path
	}
	return filepath.Join(rootDir, path)
}
