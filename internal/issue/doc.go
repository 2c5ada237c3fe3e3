// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. Failure classes that deserve a longer explanation also have a
// Markdown guide in the issue catalog, rendered for the terminal with glamour.
package issue
