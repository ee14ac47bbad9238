package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

const (
	GeneratePackageJSONMessage = "You must set targets.build.options.generatePackageJson in project.json to true"
	DescriptorNotFoundMessage  = "could not find serverless.yml in root directory"
	NoChangesToDeployMarker    = "No changes to deploy"
)

type customError struct {
	error
}

type ConfigurationError customError
type InstallError customError
type DescriptorCopyError customError
type DeployError customError

func NewConfigurationError(err error) ConfigurationError {
	return ConfigurationError{err}
}

func NewInstallError(err error) InstallError {
	return InstallError{err}
}

func NewDescriptorCopyError(cause error) DescriptorCopyError {
	if cause == nil {
		return DescriptorCopyError{errors.New(DescriptorNotFoundMessage)}
	}
	return DescriptorCopyError{errors.Wrap(cause, DescriptorNotFoundMessage)}
}

// Cause lets errors.Cause reach the underlying file system error.
func (err DescriptorCopyError) Cause() error {
	return errors.Cause(err.error)
}

func NewDeployError(err error) DeployError {
	return DeployError{err}
}

type ErrorKind string

const (
	KindNone           ErrorKind = ""
	KindUnknown        ErrorKind = "unknown"
	KindConfiguration  ErrorKind = "configuration"
	KindInstall        ErrorKind = "install"
	KindDescriptorCopy ErrorKind = "descriptor-copy"
	KindDeploy         ErrorKind = "deploy"
)

func KindOf(err error) ErrorKind {
	switch err.(type) {
	case nil:
		return KindNone
	case ConfigurationError:
		return KindConfiguration
	case InstallError:
		return KindInstall
	case DescriptorCopyError:
		return KindDescriptorCopy
	case DeployError:
		return KindDeploy
	default:
		return KindUnknown
	}
}

func NewError(errs ...error) Error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", unwrapKind(err))
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

// unwrapKind returns the error inside a kinded error, whose own formatting
// stops at Error() and so would hide the stack.
func unwrapKind(err error) error {
	switch kinded := err.(type) {
	case ConfigurationError:
		return kinded.error
	case InstallError:
		return kinded.error
	case DescriptorCopyError:
		return kinded.error
	case DeployError:
		return kinded.error
	default:
		return err
	}
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

// First returns the error that stopped the workflow.
func (err Error) First() error {
	if err.IsNil() {
		return nil
	}
	return err[0]
}

// BuildExitCode sets one bit per kind of failure across results.
func BuildExitCode(results []Result) int {
	exitCode := 0

	for _, result := range results {
		exitCode = exitCode | ExitCodeForKind(result.Kind)
	}

	return exitCode
}

func ExitCodeForKind(kind ErrorKind) int {
	switch kind {
	case KindNone:
		return 0
	case KindConfiguration:
		return 1 << 2
	case KindInstall:
		return 1 << 3
	case KindDescriptorCopy:
		return 1 << 4
	case KindDeploy:
		return 1 << 5
	default:
		return 1
	}
}
