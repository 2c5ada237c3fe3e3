// SPDX-License-Identifier: MPL-2.0

package invoker

import "modtest-cli/internal/config"

// Options describes one module's test invocation. Zero-valued fields fall back to
// the package defaults, except DefaultTimeout where the caller decides: pass
// config.DefaultTimeoutSeconds for the usual 600s, 0 to disable injection.
type Options struct {
	// Root is the module root; relative paths resolve against the process
	// working directory. Required.
	Root string
	// DisplayName names the module in progress output; defaults to the root's base name.
	DisplayName string
	// TestsDir is the test suite directory relative to Root.
	TestsDir string
	// TestPattern is the base-name glob identifying test files.
	TestPattern string
	// VenvDir is the virtual environment directory relative to Root (or absolute).
	VenvDir string
	// Framework is the Python module run with -m.
	Framework string
	// TimeoutFlag is the framework's timeout option.
	TimeoutFlag string
	// DefaultTimeout is the value injected with TimeoutFlag; 0 disables injection.
	DefaultTimeout int
}

// OptionsFromConfig seeds Options for root from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, root string) Options {
	return Options{
		Root:           root,
		TestsDir:       cfg.Tests.Dir,
		TestPattern:    cfg.Tests.Pattern,
		VenvDir:        cfg.VenvDir,
		Framework:      cfg.Tests.Framework,
		TimeoutFlag:    cfg.Tests.TimeoutFlag,
		DefaultTimeout: cfg.Tests.DefaultTimeout,
	}
}

func (o Options) withDefaults() Options {
	if o.TestsDir == "" {
		o.TestsDir = config.DefaultTestsDir
	}
	if o.TestPattern == "" {
		o.TestPattern = config.DefaultTestPattern
	}
	if o.VenvDir == "" {
		o.VenvDir = config.DefaultVenvDir
	}
	if o.Framework == "" {
		o.Framework = config.DefaultFramework
	}
	if o.TimeoutFlag == "" {
		o.TimeoutFlag = config.DefaultTimeoutFlag
	}
	return o
}
