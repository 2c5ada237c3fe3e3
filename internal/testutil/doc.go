// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Besides the Must* helpers it builds throwaway Python module trees (Module) with
// optional fake virtual-environment interpreters that record how they were invoked.
package testutil
