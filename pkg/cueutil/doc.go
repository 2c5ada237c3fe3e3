// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE parsing flow shared by modtest configuration:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode to Go values
//
// Errors carry the file name and a JSON-style path to the offending field
// (e.g. "config.cue: tests.default_timeout: invalid value -1").
package cueutil
