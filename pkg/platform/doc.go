// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It centralizes the GOOS names modtest compares against and the on-disk layout of
// Python virtual environments, which differs between Windows (Scripts\python.exe)
// and POSIX systems (bin/python).
package platform
