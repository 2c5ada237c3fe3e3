// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"errors"
	"fmt"
)

var (
	// ErrModuleRootNotFound is returned when the module root cannot be resolved
	// or is not a directory.
	ErrModuleRootNotFound = errors.New("module root not found")
	// ErrMissingRuntime is the sentinel error wrapped by MissingRuntimeError.
	ErrMissingRuntime = errors.New("module runtime not found")
	// ErrChildProcessFailure is returned when the test process could not be
	// started or ended without an exit status.
	ErrChildProcessFailure = errors.New("test process failed")
	// ErrInvalidTimeout is returned for a negative default timeout.
	ErrInvalidTimeout = errors.New("default timeout must be >= 0")
)

// MissingRuntimeError is returned when tests exist but the module's venv
// interpreter does not.
type MissingRuntimeError struct {
	Path string
}

// Error implements the error interface.
func (e *MissingRuntimeError) Error() string {
	return fmt.Sprintf("no interpreter at %s", e.Path)
}

// Unwrap returns ErrMissingRuntime for errors.Is() compatibility.
func (e *MissingRuntimeError) Unwrap() error { return ErrMissingRuntime }
