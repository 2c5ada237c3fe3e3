// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// errFound stops the walk at the first matching file.
var errFound = errors.New("test file found")

// HasTests reports whether the plan's tests directory contains at least one file
// whose base name matches TestPattern, searching recursively. A missing tests
// directory, or a tests path that is not a directory, means there is nothing to
// test and is not an error. Cache and hidden directories are skipped.
func (p *InvocationPlan) HasTests() (bool, error) {
	info, err := os.Stat(p.TestsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	err = filepath.WalkDir(p.TestsPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != p.TestsPath && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		ok, err := filepath.Match(p.TestPattern, d.Name())
		if err != nil {
			return err
		}
		if ok {
			return errFound
		}
		return nil
	})
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

func skipDir(name string) bool {
	return name == "__pycache__" || strings.HasPrefix(name, ".")
}
