// SPDX-License-Identifier: MPL-2.0

// Package pyproject reads per-module test settings from a module's
// pyproject.toml: the [tool.modtest] table, plus [project].name as the
// fallback display name.
package pyproject
