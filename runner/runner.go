package runner

import (
	"strings"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"

	"github.com/nx-serverless/sls-deploy/orchestrator"
)

//go:generate counterfeiter -o fakes/fake_complex_command_runner.go . ComplexCommandRunner
type ComplexCommandRunner interface {
	RunComplexCommand(cmd boshsys.Command) (string, string, int, error)
}

type Logger interface {
	Debug(tag, msg string, args ...interface{})
}

type CommandRunner struct {
	cmdRunner ComplexCommandRunner
	logger    Logger
}

func NewCommandRunner(cmdRunner ComplexCommandRunner, logger Logger) CommandRunner {
	return CommandRunner{cmdRunner: cmdRunner, logger: logger}
}

// Run starts command in dir without a shell and waits for it. Exit codes
// are reported, not treated as errors; callers decide what a failure is.
func (r CommandRunner) Run(dir string, command []string) (orchestrator.CommandOutput, error) {
	if len(command) == 0 {
		return orchestrator.CommandOutput{}, errors.New("no command to run")
	}

	label := strings.Join(command, " ")
	r.logger.Debug("runner", "[%s] running in %s", label, dir)

	stdout, stderr, exitCode, err := r.cmdRunner.RunComplexCommand(boshsys.Command{
		Name:       command[0],
		Args:       command[1:],
		WorkingDir: dir,
	})

	r.logOutput(stdout, stderr, exitCode, label)

	// bosh-utils reports a non-zero exit as an error too; only a negative
	// status means the process never ran to completion.
	if err != nil && exitCode < 0 {
		return orchestrator.CommandOutput{}, errors.Wrapf(err, "could not run '%s'", label)
	}

	return orchestrator.CommandOutput{
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
	}, nil
}

func (r CommandRunner) logOutput(stdout, stderr string, exitCode int, label string) {
	r.logger.Debug("runner", "[%s] stdout: %s", label, stdout)
	r.logger.Debug("runner", "[%s] stderr: %s", label, stderr)
	r.logger.Debug("runner", "[%s] exit code: %d", label, exitCode)
}
