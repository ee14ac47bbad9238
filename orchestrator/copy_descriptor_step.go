package orchestrator

import (
	"gopkg.in/yaml.v2"
)

type CopyDescriptorStep struct {
	fs     FileSystem
	logger Logger
}

func NewCopyDescriptorStep(fs FileSystem, logger Logger) Step {
	return &CopyDescriptorStep{fs: fs, logger: logger}
}

func (s *CopyDescriptorStep) Run(session *Session) error {
	s.logger.Info(logTag, "Copying serverless.yml")

	err := s.fs.CopyFile(session.SourceDescriptorPath(), session.BuildDescriptorPath())
	if err != nil {
		return NewDescriptorCopyError(err)
	}

	s.logServiceName(session.BuildDescriptorPath())
	return nil
}

type descriptor struct {
	Service interface{} `yaml:"service"`
}

// logServiceName never fails the step.
func (s *CopyDescriptorStep) logServiceName(path string) {
	contents, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Debug(logTag, "Could not read %s: %s", path, err)
		return
	}

	var parsed descriptor
	if err := yaml.Unmarshal(contents, &parsed); err != nil {
		s.logger.Debug(logTag, "Could not parse %s: %s", path, err)
		return
	}

	switch service := parsed.Service.(type) {
	case string:
		s.logger.Debug(logTag, "Descriptor declares service %s", service)
	case map[interface{}]interface{}:
		s.logger.Debug(logTag, "Descriptor declares service %v", service["name"])
	default:
		s.logger.Debug(logTag, "Descriptor %s has no service name", path)
	}
}
