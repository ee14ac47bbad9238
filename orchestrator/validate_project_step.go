package orchestrator

import "github.com/pkg/errors"

const GeneratePackageJSONOption = "generatePackageJson"

type ValidateProjectStep struct {
	logger Logger
}

func NewValidateProjectStep(logger Logger) Step {
	return &ValidateProjectStep{logger: logger}
}

func (s *ValidateProjectStep) Run(session *Session) error {
	if session.Workspace() == nil {
		return NewConfigurationError(errors.Errorf("no workspace to look up project %s in", session.ProjectName()))
	}

	value, err := session.Workspace().BuildOption(session.ProjectName(), GeneratePackageJSONOption)
	if err != nil {
		return NewConfigurationError(errors.Wrapf(err, "reading build options of project %s", session.ProjectName()))
	}

	if !IsTruthy(value) {
		return NewConfigurationError(errors.New(GeneratePackageJSONMessage))
	}

	s.logger.Debug(logTag, "Project %s has %s set to %v", session.ProjectName(), GeneratePackageJSONOption, value)
	return nil
}
