// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"modtest-cli/internal/issue"
	"modtest-cli/pkg/cueutil"
	"modtest-cli/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "modtest"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides (MODTEST_TESTS_DEFAULT_TIMEOUT, ...).
	EnvPrefix = "MODTEST"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the modtest configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the config file location for opts: the explicit file when set,
// otherwise config.cue inside the (possibly overridden) config directory.
func FilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}
	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading without touching
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	cfgPath, err := FilePath(opts)
	if err != nil {
		return nil, err
	}

	resolvedPath := ""
	switch {
	case fileExists(cfgPath):
		if err := loadCUEIntoViper(v, cfgPath); err != nil {
			return nil, configLoadError(cfgPath, err)
		}
		resolvedPath = cfgPath
	case opts.ConfigFilePath != "":
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use 'modtest config init' to create a default configuration").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}
	// No config file: defaults plus environment.

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.SourcePath = resolvedPath

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check MODTEST_* environment variables for invalid values").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// newViper returns a viper instance seeded with defaults and bound to MODTEST_* env vars.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("venv_dir", defaults.VenvDir)
	v.SetDefault("tests.dir", defaults.Tests.Dir)
	v.SetDefault("tests.pattern", defaults.Tests.Pattern)
	v.SetDefault("tests.framework", defaults.Tests.Framework)
	v.SetDefault("tests.timeout_flag", defaults.Tests.TimeoutFlag)
	v.SetDefault("tests.default_timeout", defaults.Tests.DefaultTimeout)
	v.SetDefault("setup.base_script", defaults.Setup.BaseScript)
	v.SetDefault("setup.python", defaults.Setup.Python)
	v.SetDefault("root_markers", defaults.RootMarkers)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func configLoadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to the file selected by opts.
// It returns the path and whether a file was created; an existing file is left untouched.
func CreateDefaultConfig(opts LoadOptions) (string, bool, error) {
	cfgPath, err := FilePath(opts)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return cfgPath, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// modtest configuration file\n\n")

	fmt.Fprintf(&sb, "venv_dir: %q\n", cfg.VenvDir)

	sb.WriteString("\ntests: {\n")
	fmt.Fprintf(&sb, "\tdir:             %q\n", cfg.Tests.Dir)
	fmt.Fprintf(&sb, "\tpattern:         %q\n", cfg.Tests.Pattern)
	fmt.Fprintf(&sb, "\tframework:       %q\n", cfg.Tests.Framework)
	fmt.Fprintf(&sb, "\ttimeout_flag:    %q\n", cfg.Tests.TimeoutFlag)
	fmt.Fprintf(&sb, "\tdefault_timeout: %d\n", cfg.Tests.DefaultTimeout)
	sb.WriteString("}\n")

	sb.WriteString("\nsetup: {\n")
	fmt.Fprintf(&sb, "\tbase_script: %q\n", cfg.Setup.BaseScript)
	if cfg.Setup.Python != "" {
		fmt.Fprintf(&sb, "\tpython:      %q\n", cfg.Setup.Python)
	}
	sb.WriteString("}\n")

	sb.WriteString("\nroot_markers: [")
	for i, m := range cfg.RootMarkers {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", m)
	}
	sb.WriteString("]\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}
