package orchestrator

// Workflow runs its steps in the order they were added against one Session.
// The first failing step ends the run; later steps never start.
type Workflow struct {
	steps []Step
}

func NewWorkflow() *Workflow {
	return &Workflow{}
}

func (workflow *Workflow) Then(step Step) *Workflow {
	workflow.steps = append(workflow.steps, step)
	return workflow
}

func (workflow *Workflow) Run(session *Session) Error {
	for _, step := range workflow.steps {
		if err := step.Run(session); err != nil {
			return NewError(err)
		}
	}
	return nil
}

type Step interface {
	Run(*Session) error
}
