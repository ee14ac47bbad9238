package orchestrator

// Options are the per-invocation deploy options. An empty Stage leaves the
// stage to the deploy tool's default.
type Options struct {
	Stage string
}

// ExecutorContext is the read-only project metadata handed to Deploy by the
// host build system.
type ExecutorContext struct {
	ProjectName string
	Workspace   Workspace
}

//go:generate counterfeiter -o fakes/fake_workspace.go . Workspace
type Workspace interface {
	// BuildOption returns projects[projectName].targets.build.options[option].
	// A nil value with a nil error means the option is not set.
	BuildOption(projectName, option string) (interface{}, error)
}

// Result is what Deploy reports. Detail holds the full error chain with
// stack traces and is empty on success.
type Result struct {
	Success bool
	Kind    ErrorKind
	Message string
	Detail  string
}
