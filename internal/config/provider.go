// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions selects the config file for one command.
type LoadOptions struct {
	// ConfigFilePath is the --config flag; it wins over ConfigDirPath.
	ConfigFilePath string
	// ConfigDirPath replaces the platform config directory.
	ConfigDirPath string
}

// Provider resolves, loads and initializes the modtest config file. The CLI
// receives one through its Dependencies so commands can run against a fixed
// configuration.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
	Path(opts LoadOptions) (string, error)
	Init(opts LoadOptions) (path string, created bool, err error)
}

// FileProvider is the on-disk Provider. A non-empty Dir is used as the config
// directory whenever opts name neither a file nor a directory.
type FileProvider struct {
	Dir string
}

// NewProvider returns a FileProvider bound to the platform config directory.
func NewProvider() *FileProvider {
	return &FileProvider{}
}

// Load reads config.cue, applies MODTEST_* overrides and validates the result.
func (p *FileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return loadWithOptions(ctx, p.resolve(opts))
}

// Path returns the config file that Load and Init would use.
func (p *FileProvider) Path(opts LoadOptions) (string, error) {
	return FilePath(p.resolve(opts))
}

// Init writes the default configuration unless the file already exists.
func (p *FileProvider) Init(opts LoadOptions) (string, bool, error) {
	return CreateDefaultConfig(p.resolve(opts))
}

func (p *FileProvider) resolve(opts LoadOptions) LoadOptions {
	if opts.ConfigFilePath == "" && opts.ConfigDirPath == "" {
		opts.ConfigDirPath = p.Dir
	}
	return opts
}
