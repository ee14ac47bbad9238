// Package workspace reads the project metadata of an Nx-style workspace.
//
// A workspace file lists projects either inline or as paths to directories
// holding a project.json. Projects missing from the file are looked up in
// apps/<name>/project.json, the way newer Nx versions infer them.
package workspace

import (
	"path/filepath"

	"github.com/cppforlife/go-patch/patch"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultFileName = "workspace.json"
	projectFileName = "project.json"
)

//go:generate counterfeiter -o fakes/fake_file_system.go . FileSystem
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}

type Workspace struct {
	document interface{}
	rootDir  string
	fs       FileSystem
}

func Load(fs FileSystem, path, rootDir string) (*Workspace, error) {
	contents, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading workspace file %s", path)
	}

	workspace, err := New(fs, contents, rootDir)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading workspace file %s", path)
	}
	return workspace, nil
}

func New(fs FileSystem, contents []byte, rootDir string) (*Workspace, error) {
	document, err := parse(contents)
	if err != nil {
		return nil, err
	}

	return &Workspace{document: document, rootDir: rootDir, fs: fs}, nil
}

// BuildOption returns projects[projectName].targets.build.options[option].
// A project without build options yields nil and no error.
func (w *Workspace) BuildOption(projectName, option string) (interface{}, error) {
	project, err := w.project(projectName)
	if err != nil {
		return nil, err
	}

	build, err := buildTarget(project, projectName)
	if err != nil {
		return nil, err
	}

	target, ok := build.(map[interface{}]interface{})
	if !ok {
		return nil, errors.Errorf("build target of project %s is not a map", projectName)
	}

	options, ok := target["options"].(map[interface{}]interface{})
	if !ok {
		return nil, nil
	}

	return options[option], nil
}

func (w *Workspace) project(name string) (interface{}, error) {
	project, err := find(w.document, "projects", name)
	if err != nil {
		inferred := filepath.Join(w.rootDir, "apps", name, projectFileName)
		if w.fs.FileExists(inferred) {
			return w.loadProjectFile(inferred)
		}
		return nil, errors.Wrapf(err, "error finding project %s", name)
	}

	if path, ok := project.(string); ok {
		return w.loadProjectFile(filepath.Join(w.rootDir, path, projectFileName))
	}

	return project, nil
}

func (w *Workspace) loadProjectFile(path string) (interface{}, error) {
	contents, err := w.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading project file %s", path)
	}

	project, err := parse(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading project file %s", path)
	}
	return project, nil
}

func buildTarget(project interface{}, projectName string) (interface{}, error) {
	build, err := find(project, "targets", "build")
	if err == nil {
		return build, nil
	}

	// Angular-style workspaces call targets "architect".
	if legacy, legacyErr := find(project, "architect", "build"); legacyErr == nil {
		return legacy, nil
	}

	return nil, errors.Wrapf(err, "error finding build target of project %s", projectName)
}

func find(document interface{}, keys ...string) (interface{}, error) {
	tokens := []patch.Token{patch.RootToken{}}
	for _, key := range keys {
		tokens = append(tokens, patch.KeyToken{Key: key})
	}

	return patch.FindOp{Path: patch.NewPointer(tokens)}.Apply(document)
}

// parse accepts YAML and, since JSON is a subset of it, workspace.json and
// project.json files.
func parse(contents []byte) (interface{}, error) {
	var document interface{}

	err := yaml.Unmarshal(contents, &document)
	if err != nil {
		return nil, errors.Wrap(err, "error unmarshalling workspace yaml")
	}

	return document, nil
}
