// SPDX-License-Identifier: MPL-2.0

// Package invoker runs a Python module's test suite inside the module's own
// virtual environment.
//
// A run is a straight line: resolve the module root, look for test files under
// the tests directory, locate the venv interpreter, build
// "<venv python> -m <framework> <args...>" (appending a default timeout option
// when the caller passed none), spawn it in the module root and hand back its
// exit code untouched. Having no tests is success; a missing venv is a hard
// failure and never falls back to a global interpreter.
//
// Each Run is independent. The invoker keeps no state between runs and does not
// cancel or time out the child; timeouts belong to the test framework.
package invoker
