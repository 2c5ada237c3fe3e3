// SPDX-License-Identifier: MPL-2.0

// Package moduleroot locates a module root by walking up from a directory to
// the first one holding a marker file.
package moduleroot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"modtest-cli/internal/invoker"
	"modtest-cli/internal/issue"
)

// Find returns the nearest directory at or above start that contains any of
// markers. The error wraps invoker.ErrModuleRootNotFound when the filesystem
// root is reached without a match.
func Find(start string, markers []string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", notFound(start, errors.Join(invoker.ErrModuleRootNotFound, err))
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", notFound(start, fmt.Errorf("%w: no %v above %s", invoker.ErrModuleRootNotFound, markers, start))
		}
		dir = parent
	}
}

func notFound(start string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("find module root").
		WithResource(start).
		WithSuggestion("Run modtest from inside a module directory").
		WithSuggestion("Pass the module directory with --root").
		WithIssue(issue.ModuleRootNotFoundId).
		Wrap(cause).
		BuildError()
}
