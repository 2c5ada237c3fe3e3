// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CheckRuntime verifies that the plan's venv interpreter exists and is a file.
// Symlinked interpreters (the usual venv layout) are followed.
func (p *InvocationPlan) CheckRuntime() error {
	info, err := os.Stat(p.RuntimePath)
	if errors.Is(err, fs.ErrNotExist) {
		return &MissingRuntimeError{Path: p.RuntimePath}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", &MissingRuntimeError{Path: p.RuntimePath}, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: is a directory", &MissingRuntimeError{Path: p.RuntimePath})
	}
	return nil
}
