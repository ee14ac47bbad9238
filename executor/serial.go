package executor

func NewSerialExecutor() SerialExecutor {
	return SerialExecutor{}
}

type SerialExecutor struct {
}

func (s SerialExecutor) Run(executables []Executable) []ProjectResult {
	var results []ProjectResult
	for _, executable := range executables {
		results = append(results, executable.Execute())
	}

	return results
}
