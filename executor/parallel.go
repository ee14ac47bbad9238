package executor

func NewParallelExecutor(maxInFlight int) ParallelExecutor {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return ParallelExecutor{maxInFlight: maxInFlight}
}

// ParallelExecutor runs up to maxInFlight executables at a time. Results are
// returned in the order of the executables.
type ParallelExecutor struct {
	maxInFlight int
}

func (p ParallelExecutor) Run(executables []Executable) []ProjectResult {
	results := make([]ProjectResult, len(executables))

	guard := make(chan bool, p.maxInFlight)
	done := make(chan bool, len(executables))

	for index, executable := range executables {
		guard <- true
		go func(index int, executable Executable) {
			results[index] = executable.Execute()
			<-guard
			done <- true
		}(index, executable)
	}

	for range executables {
		<-done
	}

	return results
}
