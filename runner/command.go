package runner

import (
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// ParseCommand splits a command line the way a POSIX shell would, without
// expanding variables or running anything.
func ParseCommand(raw string) ([]string, error) {
	args, err := shellwords.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse command '%s'", raw)
	}
	if len(args) == 0 {
		return nil, errors.Errorf("command '%s' must contain at least one argument", raw)
	}
	return args, nil
}
