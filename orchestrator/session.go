package orchestrator

import "path/filepath"

const descriptorFileName = "serverless.yml"

type Session struct {
	projectName string
	stage       string
	workspace   Workspace
	rootDir     string
	distDir     string
}

func NewSession(projectName, stage string, workspace Workspace, rootDir, distDir string) *Session {
	return &Session{
		projectName: projectName,
		stage:       stage,
		workspace:   workspace,
		rootDir:     rootDir,
		distDir:     distDir,
	}
}

func (session *Session) ProjectName() string {
	return session.projectName
}

func (session *Session) Stage() string {
	return session.stage
}

func (session *Session) Workspace() Workspace {
	return session.workspace
}

// SourceDir is apps/<project> under the workspace root.
func (session *Session) SourceDir() string {
	return filepath.Join(session.rootDir, "apps", session.projectName)
}

// BuildDir is apps/<project> under the compiled output directory.
func (session *Session) BuildDir() string {
	return filepath.Join(session.distDir, "apps", session.projectName)
}

func (session *Session) SourceDescriptorPath() string {
	return filepath.Join(session.SourceDir(), descriptorFileName)
}

func (session *Session) BuildDescriptorPath() string {
	return filepath.Join(session.BuildDir(), descriptorFileName)
}
