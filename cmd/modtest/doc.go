// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the modtest command tree.
//
// Handlers stay thin: they load configuration, resolve the module root and
// options, then delegate to internal/invoker or internal/setup. Failures are
// rendered to stderr by the handler itself and surfaced to Main as *ExitError.
package cmd
