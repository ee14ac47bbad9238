package orchestrator

type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

//go:generate counterfeiter -o fakes/fake_command_runner.go . CommandRunner
type CommandRunner interface {
	// Run executes command in dir and waits for it to finish. The error is
	// only set when the command could not be run at all; a non-zero exit
	// code is reported through CommandOutput.
	Run(dir string, command []string) (CommandOutput, error)
}

//go:generate counterfeiter -o fakes/fake_file_system.go . FileSystem
type FileSystem interface {
	CopyFile(srcPath, dstPath string) error
	ReadFile(path string) ([]byte, error)
}
