package integration

import (
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"
)

// fakeTool records its working directory and arguments under $FAKE_LOG_DIR
// and echoes $FAKE_<NAME>_STDOUT and $FAKE_<NAME>_STDERR.
const fakeTool = `#!/bin/sh
pwd > "$FAKE_LOG_DIR/%[1]s.pwd"
echo "$@" > "$FAKE_LOG_DIR/%[1]s.args"
if [ -n "$FAKE_%[2]s_STDOUT" ]; then printf '%%s\n' "$FAKE_%[2]s_STDOUT"; fi
if [ -n "$FAKE_%[2]s_STDERR" ]; then printf '%%s\n' "$FAKE_%[2]s_STDERR" >&2; fi
exit 0
`

type Workspace struct {
	Root   string
	BinDir string
	LogDir string
}

func NewWorkspace() Workspace {
	root, err := os.MkdirTemp("", "sls-deploy-integration")
	Expect(err).NotTo(HaveOccurred())
	root, err = filepath.EvalSymlinks(root)
	Expect(err).NotTo(HaveOccurred())

	workspace := Workspace{
		Root:   root,
		BinDir: filepath.Join(root, ".bin"),
		LogDir: filepath.Join(root, ".log"),
	}
	Expect(os.MkdirAll(workspace.BinDir, 0755)).To(Succeed())
	Expect(os.MkdirAll(workspace.LogDir, 0755)).To(Succeed())

	workspace.writeTool("npm", "NPM")
	workspace.writeTool("sls", "SLS")
	return workspace
}

func (w Workspace) writeTool(name, envName string) {
	script := []byte(fmt.Sprintf(fakeTool, name, envName))
	Expect(os.WriteFile(filepath.Join(w.BinDir, name), script, 0755)).To(Succeed())
}

func (w Workspace) WriteFile(path, contents string) {
	fullPath := filepath.Join(w.Root, path)
	Expect(os.MkdirAll(filepath.Dir(fullPath), 0755)).To(Succeed())
	Expect(os.WriteFile(fullPath, []byte(contents), 0644)).To(Succeed())
}

func (w Workspace) Mkdir(path string) {
	Expect(os.MkdirAll(filepath.Join(w.Root, path), 0755)).To(Succeed())
}

func (w Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.Root}, elem...)...)
}

// Recorded returns what a fake tool wrote, or "" when it never ran.
func (w Workspace) Recorded(tool, what string) string {
	contents, err := os.ReadFile(filepath.Join(w.LogDir, tool+"."+what))
	if os.IsNotExist(err) {
		return ""
	}
	Expect(err).NotTo(HaveOccurred())
	return string(contents)
}

func (w Workspace) Env(extra ...string) []string {
	return append([]string{
		"PATH=" + w.BinDir + ":" + os.Getenv("PATH"),
		"FAKE_LOG_DIR=" + w.LogDir,
	}, extra...)
}

func (w Workspace) Destroy() {
	Expect(os.RemoveAll(w.Root)).To(Succeed())
}
