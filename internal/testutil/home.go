// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"modtest-cli/pkg/platform"
)

// SetHomeDir points the platform home variable at dir and returns a cleanup
// function that restores it. Windows uses USERPROFILE, everything else HOME.
//
//	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	if runtime.GOOS == platform.Windows {
		return MustSetenv(t, "USERPROFILE", dir)
	}
	return MustSetenv(t, "HOME", dir)
}
