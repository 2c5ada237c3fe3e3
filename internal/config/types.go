// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultVenvDir is the per-module virtual environment directory.
	DefaultVenvDir = ".venv"
	// DefaultTestsDir is the per-module test suite directory.
	DefaultTestsDir = "tests"
	// DefaultTestPattern matches test files by base name.
	DefaultTestPattern = "test_*.*"
	// DefaultFramework is the Python module invoked with -m.
	DefaultFramework = "pytest"
	// DefaultTimeoutFlag is the pytest-timeout option.
	DefaultTimeoutFlag = "--timeout"
	// DefaultTimeoutSeconds is injected when the caller passes no timeout.
	DefaultTimeoutSeconds = 600
	// DefaultBaseScript is the shared setup script, relative to the module root.
	DefaultBaseScript = "../base/module_setup.py"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// VenvDir is the virtual environment directory, relative to the module root.
		VenvDir string `json:"venv_dir" mapstructure:"venv_dir"`
		// Tests configures test discovery and the framework command line.
		Tests TestsConfig `json:"tests" mapstructure:"tests"`
		// Setup configures delegation to the shared base setup script.
		Setup SetupConfig `json:"setup" mapstructure:"setup"`
		// RootMarkers are file names that identify a module root.
		RootMarkers []string `json:"root_markers" mapstructure:"root_markers"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`

		// SourcePath is the config file that was loaded; empty when running on defaults.
		SourcePath string `json:"-" mapstructure:"-"`
	}

	// TestsConfig configures test discovery and invocation.
	TestsConfig struct {
		Dir            string `json:"dir" mapstructure:"dir"`
		Pattern        string `json:"pattern" mapstructure:"pattern"`
		Framework      string `json:"framework" mapstructure:"framework"`
		TimeoutFlag    string `json:"timeout_flag" mapstructure:"timeout_flag"`
		DefaultTimeout int    `json:"default_timeout" mapstructure:"default_timeout"`
	}

	// SetupConfig configures module setup delegation.
	SetupConfig struct {
		BaseScript string `json:"base_script" mapstructure:"base_script"`
		Python     string `json:"python" mapstructure:"python"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		VenvDir: DefaultVenvDir,
		Tests: TestsConfig{
			Dir:            DefaultTestsDir,
			Pattern:        DefaultTestPattern,
			Framework:      DefaultFramework,
			TimeoutFlag:    DefaultTimeoutFlag,
			DefaultTimeout: DefaultTimeoutSeconds,
		},
		Setup: SetupConfig{
			BaseScript: DefaultBaseScript,
		},
		RootMarkers: []string{"module_setup.py", "pyproject.toml", "setup.py"},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate returns an error if the ColorScheme is not one of the known schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// GlamourStyle returns the glamour standard style name for the scheme.
func (c ColorScheme) GlamourStyle() string {
	if c == "" {
		return string(ColorSchemeAuto)
	}
	return string(c)
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the sentinel and field-level sentinels.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks the fields that environment overrides can set without passing
// through the CUE schema.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.VenvDir) == "" {
		errs = append(errs, errors.New("venv_dir must not be empty"))
	}
	if strings.TrimSpace(c.Tests.Dir) == "" {
		errs = append(errs, errors.New("tests.dir must not be empty"))
	}
	if strings.TrimSpace(c.Tests.Pattern) == "" {
		errs = append(errs, errors.New("tests.pattern must not be empty"))
	} else if _, err := path.Match(c.Tests.Pattern, ""); err != nil {
		errs = append(errs, fmt.Errorf("tests.pattern %q: %w", c.Tests.Pattern, err))
	}
	if strings.TrimSpace(c.Tests.Framework) == "" {
		errs = append(errs, errors.New("tests.framework must not be empty"))
	}
	if c.Tests.DefaultTimeout < 0 {
		errs = append(errs, fmt.Errorf("tests.default_timeout must be >= 0, got %d", c.Tests.DefaultTimeout))
	}
	if c.Tests.DefaultTimeout > 0 && !strings.HasPrefix(c.Tests.TimeoutFlag, "-") {
		errs = append(errs, fmt.Errorf("tests.timeout_flag %q must start with '-'", c.Tests.TimeoutFlag))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}
