// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"modtest-cli/internal/testutil"
	"modtest-cli/pkg/types"
)

func TestProcessExecutor_Execute(t *testing.T) {
	t.Parallel()
	testutil.SkipWithoutPOSIXShell(t)

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	e := &ProcessExecutor{Stdout: &stdout, Stderr: &stderr}

	code, err := e.Execute(t.Context(), []string{"/bin/sh", "-c", "pwd; echo oops >&2; exit 7"}, dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if code != 7 {
		t.Errorf("Execute() = %d, want 7", code)
	}

	cwd := strings.TrimSpace(stdout.String())
	if got, want := testutil.MustEvalSymlinks(t, cwd), testutil.MustEvalSymlinks(t, dir); got != want {
		t.Errorf("child cwd = %q, want %q", got, want)
	}
	if got := strings.TrimSpace(stderr.String()); got != "oops" {
		t.Errorf("stderr = %q, want oops", got)
	}
}

func TestProcessExecutor_Execute_Success(t *testing.T) {
	t.Parallel()
	testutil.SkipWithoutPOSIXShell(t)

	code, err := (&ProcessExecutor{}).Execute(t.Context(), []string{"/bin/sh", "-c", "exit 0"}, t.TempDir())
	if err != nil || code != types.ExitSuccess {
		t.Errorf("Execute() = (%d, %v), want (0, nil)", code, err)
	}
}

func TestProcessExecutor_Execute_Signaled(t *testing.T) {
	t.Parallel()
	testutil.SkipWithoutPOSIXShell(t)

	code, err := (&ProcessExecutor{}).Execute(t.Context(), []string{"/bin/sh", "-c", "kill -KILL $$"}, t.TempDir())
	if code != types.ExitFailure {
		t.Errorf("Execute() = %d, want 1", code)
	}
	if !errors.Is(err, ErrChildProcessFailure) {
		t.Errorf("Execute() error = %v, want ErrChildProcessFailure", err)
	}
}

func TestProcessExecutor_Execute_StartFailure(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no-such-python")
	code, err := (&ProcessExecutor{}).Execute(t.Context(), []string{missing}, t.TempDir())
	if code != types.ExitFailure || !errors.Is(err, ErrChildProcessFailure) {
		t.Errorf("Execute() = (%d, %v), want (1, ErrChildProcessFailure)", code, err)
	}
}

func TestProcessExecutor_Execute_EmptyCommand(t *testing.T) {
	t.Parallel()

	code, err := (&ProcessExecutor{}).Execute(t.Context(), nil, t.TempDir())
	if code != types.ExitFailure || !errors.Is(err, ErrChildProcessFailure) {
		t.Errorf("Execute() = (%d, %v), want (1, ErrChildProcessFailure)", code, err)
	}
}
