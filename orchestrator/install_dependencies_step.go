package orchestrator

import (
	"strings"

	"github.com/pkg/errors"
)

var DefaultInstallCommand = []string{"npm", "install"}

type InstallDependenciesStep struct {
	runner         CommandRunner
	command        []string
	strictExitCode bool
	logger         Logger
}

func NewInstallDependenciesStep(runner CommandRunner, command []string, strictExitCode bool, logger Logger) Step {
	return &InstallDependenciesStep{
		runner:         runner,
		command:        command,
		strictExitCode: strictExitCode,
		logger:         logger,
	}
}

func (s *InstallDependenciesStep) Run(session *Session) error {
	s.logger.Info(logTag, "Installing dependencies")

	output, err := s.runner.Run(session.BuildDir(), s.command)
	if err != nil {
		return NewInstallError(errors.Wrapf(err, "could not run '%s' in %s", strings.Join(s.command, " "), session.BuildDir()))
	}

	if output.Stderr != "" {
		return NewInstallError(errors.New(output.Stderr))
	}

	if s.strictExitCode && output.ExitCode != 0 {
		return NewInstallError(exitCodeError(s.command, output.ExitCode))
	}

	return nil
}

func exitCodeError(command []string, exitCode int) error {
	return errors.Errorf("'%s' exited with code %d", strings.Join(command, " "), exitCode)
}
