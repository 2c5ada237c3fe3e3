// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"modtest-cli/pkg/platform"
)

// Module is a throwaway Python module tree rooted in a test temp directory.
type Module struct {
	// Root is the absolute module root.
	Root string

	recordDir string
}

// NewModule creates an empty module directory named name.
func NewModule(t testing.TB, name string) *Module {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	MustMkdirAll(t, root, 0o755)
	return &Module{Root: root, recordDir: t.TempDir()}
}

// AddFile writes a file relative to the module root.
func (m *Module) AddFile(t testing.TB, rel, content string) string {
	t.Helper()
	path := filepath.Join(m.Root, filepath.FromSlash(rel))
	MustWriteFile(t, path, content)
	return path
}

// AddTestFile writes a trivial pytest test file relative to the module root.
func (m *Module) AddTestFile(t testing.TB, rel string) string {
	t.Helper()
	return m.AddFile(t, rel, "def test_ok():\n    assert True\n")
}

// SkipWithoutPOSIXShell skips tests that rely on shell-script fake interpreters.
func SkipWithoutPOSIXShell(t testing.TB) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("fake interpreters are POSIX shell scripts")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

// AddFakeRuntime installs a fake interpreter at the venv interpreter location under
// venvDir. When run, it records its working directory and arguments, then exits
// with exitCode. It returns the interpreter path.
func (m *Module) AddFakeRuntime(t testing.TB, venvDir string, exitCode int) string {
	t.Helper()
	SkipWithoutPOSIXShell(t)

	interp := platform.VenvInterpreter(filepath.Join(m.Root, venvDir))
	script := fmt.Sprintf(`#!/bin/sh
pwd > '%[1]s/cwd'
: > '%[1]s/argv'
for a in "$@"; do printf '%%s\n' "$a" >> '%[1]s/argv'; done
exit %[2]d
`, m.recordDir, exitCode)
	MustWriteFileMode(t, interp, script, 0o755)
	return interp
}

// Invoked reports whether a fake runtime ran.
func (m *Module) Invoked() bool {
	_, err := os.Stat(filepath.Join(m.recordDir, "argv"))
	return err == nil
}

// RecordedArgs returns the arguments the fake runtime received.
func (m *Module) RecordedArgs(t testing.TB) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(m.recordDir, "argv"))
	if err != nil {
		t.Fatalf("fake runtime was not invoked: %v", err)
	}
	out := strings.TrimSuffix(string(data), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// RecordedDir returns the working directory the fake runtime ran in.
func (m *Module) RecordedDir(t testing.TB) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(m.recordDir, "cwd"))
	if err != nil {
		t.Fatalf("fake runtime was not invoked: %v", err)
	}
	return strings.TrimSpace(string(data))
}
