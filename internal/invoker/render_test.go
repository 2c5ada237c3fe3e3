// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"plain words", []string{"/m/.venv/bin/python", "-m", "pytest"}, "/m/.venv/bin/python -m pytest"},
		{"space", []string{"pytest", "-k", "a and b"}, "pytest -k 'a and b'"},
		{"empty arg", []string{"pytest", ""}, "pytest ''"},
		{"nothing", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCommand(tt.argv); got != tt.want {
				t.Errorf("FormatCommand(%q) = %q, want %q", tt.argv, got, tt.want)
			}
		})
	}
}

func TestTextReporter_Starting(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	plan := &InvocationPlan{
		ModuleRoot:            "/src/streams",
		DisplayName:           "Streams",
		RuntimePath:           "/src/streams/.venv/bin/python",
		Framework:             "pytest",
		TimeoutFlag:           "--timeout",
		DefaultTimeoutSeconds: 600,
	}
	(&TextReporter{Out: &buf}).Starting(plan)

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"Running Streams Tests",
		strings.Repeat("=", 60),
		"Running tests in: /src/streams",
		"Command: /src/streams/.venv/bin/python -m pytest --timeout 600",
		"",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Starting() output =\n%s\nwant\n%s", got, want)
	}
}
