package orchestrator

import (
	"strings"

	"github.com/pkg/errors"
)

var DefaultDeployCommand = []string{"sls", "deploy"}

type DeployStep struct {
	runner         CommandRunner
	command        []string
	strictExitCode bool
	logger         Logger
}

func NewDeployStep(runner CommandRunner, command []string, strictExitCode bool, logger Logger) Step {
	return &DeployStep{
		runner:         runner,
		command:        command,
		strictExitCode: strictExitCode,
		logger:         logger,
	}
}

func (s *DeployStep) Run(session *Session) error {
	s.logger.Info(logTag, "Deploying \"%s\" using Serverless (%s)", session.ProjectName(), describeStage(session.Stage()))

	command := s.commandFor(session.Stage())
	output, err := s.runner.Run(session.BuildDir(), command)
	if err != nil {
		return NewDeployError(errors.Wrapf(err, "could not run '%s' in %s", strings.Join(command, " "), session.BuildDir()))
	}

	if stdout := strings.TrimRight(output.Stdout, "\r\n"); stdout != "" {
		s.logger.Info(logTag, "%s", stdout)
	}

	if output.Stderr != "" {
		if strings.Contains(output.Stderr, NoChangesToDeployMarker) {
			s.logger.Info(logTag, "No changes. Skipping deploy.")
			return nil
		}
		return NewDeployError(errors.New(output.Stderr))
	}

	if s.strictExitCode && output.ExitCode != 0 {
		return NewDeployError(exitCodeError(command, output.ExitCode))
	}

	return nil
}

func (s *DeployStep) commandFor(stage string) []string {
	command := append([]string{}, s.command...)
	if stage != "" {
		command = append(command, "--stage", stage)
	}
	return command
}

func describeStage(stage string) string {
	if stage == "" {
		return "not specified"
	}
	return "stage: " + stage
}
