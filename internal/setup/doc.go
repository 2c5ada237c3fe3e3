// SPDX-License-Identifier: MPL-2.0

// Package setup prepares a module's virtual environment by delegating to the
// shared base setup script that lives next to the modules.
package setup
