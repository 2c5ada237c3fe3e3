// SPDX-License-Identifier: MPL-2.0

package pyproject

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"modtest-cli/internal/invoker"
	"modtest-cli/internal/issue"
)

// FileName is the settings file looked up in the module root.
const FileName = "pyproject.toml"

// ErrInvalidSettings is returned when pyproject.toml cannot be decoded or holds
// out-of-range [tool.modtest] values.
var ErrInvalidSettings = errors.New("invalid module settings")

type (
	// Settings are the per-module overrides. Empty fields leave the
	// corresponding option untouched.
	Settings struct {
		DisplayName    string `toml:"display-name"`
		TestsDir       string `toml:"tests-dir"`
		TestPattern    string `toml:"test-pattern"`
		VenvDir        string `toml:"venv-dir"`
		Framework      string `toml:"framework"`
		TimeoutFlag    string `toml:"timeout-flag"`
		DefaultTimeout *int   `toml:"default-timeout"`

		// ProjectName is [project].name.
		ProjectName string `toml:"-"`
	}

	document struct {
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
		Tool struct {
			Modtest Settings `toml:"modtest"`
		} `toml:"tool"`
	}
)

// Load reads root/pyproject.toml. A module without the file has empty Settings.
func Load(root string) (*Settings, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, settingsError(path, err)
	}
	return Parse(path, data)
}

// Parse decodes pyproject.toml content; path is used for error messages only.
func Parse(path string, data []byte) (*Settings, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, settingsError(fmt.Sprintf("%s:%d:%d", path, row, col), fmt.Errorf("%w: %w", ErrInvalidSettings, err))
		}
		return nil, settingsError(path, fmt.Errorf("%w: %w", ErrInvalidSettings, err))
	}

	s := doc.Tool.Modtest
	s.ProjectName = strings.TrimSpace(doc.Project.Name)
	if err := s.validate(); err != nil {
		return nil, settingsError(path, err)
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.DefaultTimeout != nil && *s.DefaultTimeout < 0 {
		return fmt.Errorf("%w: default-timeout must be >= 0, got %d", ErrInvalidSettings, *s.DefaultTimeout)
	}
	if s.TimeoutFlag != "" && !strings.HasPrefix(s.TimeoutFlag, "-") {
		return fmt.Errorf("%w: timeout-flag %q must start with '-'", ErrInvalidSettings, s.TimeoutFlag)
	}
	return nil
}

// Name returns display-name, falling back to [project].name.
func (s *Settings) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.ProjectName
}

// Apply layers the settings over opts. The display name comes from
// display-name, then [project].name; otherwise opts keeps its own.
func (s *Settings) Apply(opts invoker.Options) invoker.Options {
	if name := s.Name(); name != "" {
		opts.DisplayName = name
	}
	if s.TestsDir != "" {
		opts.TestsDir = s.TestsDir
	}
	if s.TestPattern != "" {
		opts.TestPattern = s.TestPattern
	}
	if s.VenvDir != "" {
		opts.VenvDir = s.VenvDir
	}
	if s.Framework != "" {
		opts.Framework = s.Framework
	}
	if s.TimeoutFlag != "" {
		opts.TimeoutFlag = s.TimeoutFlag
	}
	if s.DefaultTimeout != nil {
		opts.DefaultTimeout = *s.DefaultTimeout
	}
	return opts
}

func settingsError(resource string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("read module settings").
		WithResource(resource).
		WithSuggestion("Fix the syntax of pyproject.toml or remove the [tool.modtest] table").
		WithIssue(issue.ModuleSettingsInvalidId).
		Wrap(cause).
		BuildError()
}
