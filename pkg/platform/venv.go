// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"runtime"
)

const (
	// posixBinDir holds venv executables on Linux and macOS.
	posixBinDir = "bin"
	// windowsBinDir holds venv executables on Windows.
	windowsBinDir = "Scripts"
	// interpreterName is the interpreter base name inside a venv.
	interpreterName = "python"
)

// VenvBinDir returns the name of the executables directory inside a virtual
// environment for the given GOOS.
func VenvBinDir(goos string) string {
	if goos == Windows {
		return windowsBinDir
	}
	return posixBinDir
}

// ExecutableName appends the platform executable suffix to name.
func ExecutableName(goos, name string) string {
	if goos == Windows {
		return name + ".exe"
	}
	return name
}

// VenvInterpreterFor returns the interpreter path inside venvDir for the given GOOS.
// This is a pure function so tests can exercise both layouts on any host.
func VenvInterpreterFor(goos, venvDir string) string {
	return filepath.Join(venvDir, VenvBinDir(goos), ExecutableName(goos, interpreterName))
}

// VenvInterpreter returns the interpreter path inside venvDir for the current host.
func VenvInterpreter(venvDir string) string {
	return VenvInterpreterFor(runtime.GOOS, venvDir)
}
