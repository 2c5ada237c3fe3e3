// SPDX-License-Identifier: MPL-2.0

// Package config handles modtest configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/modtest/config.cue (or $XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/modtest/config.cue on macOS, %APPDATA%\modtest\config.cue
// on Windows). Files are validated against the embedded #Config schema
// (config_schema.cue) before being merged over the defaults. MODTEST_* environment
// variables override file values, e.g. MODTEST_TESTS_DEFAULT_TIMEOUT=900.
package config
