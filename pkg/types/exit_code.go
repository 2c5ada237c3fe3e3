// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared across modtest packages.
package types

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strconv"

	"modtest-cli/pkg/platform"
)

const (
	// ExitSuccess is returned when there was nothing to test or every test passed.
	ExitSuccess ExitCode = 0
	// ExitFailure is returned when a run aborts before the test framework starts.
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code. POSIX codes are 0-255;
	// Windows codes are unsigned 32-bit values such as 0xC0000005.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// range a process on GOOS can report.
	InvalidExitCodeError struct {
		Value ExitCode
		GOOS  string
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-%d on %s)", e.Value, maxExitCode(e.GOOS), e.GOOS)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate reports whether a process on the current OS can exit with c.
// Negative values never can: os/exec reports -1 for a signaled child.
func (c ExitCode) Validate() error {
	return c.ValidateFor(runtime.GOOS)
}

// ValidateFor is Validate for the given GOOS.
func (c ExitCode) ValidateFor(goos string) error {
	if c < 0 || int64(c) > maxExitCode(goos) {
		return &InvalidExitCodeError{Value: c, GOOS: goos}
	}
	return nil
}

func maxExitCode(goos string) int64 {
	if goos == platform.Windows {
		return math.MaxUint32
	}
	return 255
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
