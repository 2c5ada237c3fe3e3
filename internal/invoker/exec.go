// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"modtest-cli/pkg/types"
)

// Executor spawns one child process and waits for it.
type Executor interface {
	// Execute runs argv in dir and returns its exit code. A non-zero exit is
	// reported through the code, not the error; the error is reserved for
	// processes that could not start or ended without an exit status.
	Execute(ctx context.Context, argv []string, dir string) (types.ExitCode, error)
}

// ProcessExecutor runs commands as real child processes sharing the given
// standard streams and the parent's environment.
type ProcessExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute implements Executor. The child is deliberately not bound to ctx:
// the invoker neither cancels nor times out the test framework.
func (e *ProcessExecutor) Execute(_ context.Context, argv []string, dir string) (types.ExitCode, error) {
	if len(argv) == 0 {
		return types.ExitFailure, fmt.Errorf("%w: empty command", ErrChildProcessFailure)
	}

	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec,noctx // argv is built from the module's own venv
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	return exitCodeOf(cmd.Run())
}

// exitCodeOf maps the result of cmd.Run to an exit code.
func exitCodeOf(err error) (types.ExitCode, error) {
	if err == nil {
		return types.ExitSuccess, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal. Windows
		// statuses above 255 (0xC0000005 for a crash) pass through.
		code := types.ExitCode(exitErr.ExitCode())
		if validateErr := code.Validate(); validateErr != nil {
			return types.ExitFailure, fmt.Errorf("%w: %s: %w", ErrChildProcessFailure, exitErr.String(), validateErr)
		}
		return code, nil
	}
	return types.ExitFailure, fmt.Errorf("%w: %w", ErrChildProcessFailure, err)
}
