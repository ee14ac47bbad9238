package executor

import "github.com/nx-serverless/sls-deploy/orchestrator"

type Executor interface {
	Run([]Executable) []ProjectResult
}

//go:generate counterfeiter -o fakes/fake_executable.go . Executable
type Executable interface {
	Execute() ProjectResult
}

type ProjectResult struct {
	Project string
	Result  orchestrator.Result
}

type ActionFunc func(projectName string) orchestrator.Result

type ProjectExecutable struct {
	action ActionFunc
	name   string
}

func NewProjectExecutable(action ActionFunc, name string) ProjectExecutable {
	return ProjectExecutable{
		action: action,
		name:   name,
	}
}

func (p ProjectExecutable) Execute() ProjectResult {
	return ProjectResult{Project: p.name, Result: p.action(p.name)}
}

// NewProjectExecutables builds one executable per distinct project name, so
// a project is never deployed twice by the same run.
func NewProjectExecutables(action ActionFunc, names []string) []Executable {
	seen := map[string]bool{}
	var executables []Executable
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		executables = append(executables, NewProjectExecutable(action, name))
	}
	return executables
}

func Failures(results []ProjectResult) []ProjectResult {
	var failures []ProjectResult
	for _, result := range results {
		if !result.Result.Success {
			failures = append(failures, result)
		}
	}
	return failures
}

func ExitCode(results []ProjectResult) int {
	var deployResults []orchestrator.Result
	for _, result := range results {
		deployResults = append(deployResults, result.Result)
	}
	return orchestrator.BuildExitCode(deployResults)
}
