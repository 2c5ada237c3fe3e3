// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "locate module runtime"},
			expected: "failed to locate module runtime",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "locate module runtime",
				Resource:  "/src/streams/.venv/bin/python",
			},
			expected: "failed to locate module runtime: /src/streams/.venv/bin/python",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load configuration: config.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("specific error")
	wrapped := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("no such file or directory")
	err := &ActionableError{
		Operation:   "locate module runtime",
		Resource:    ".venv/bin/python",
		Suggestions: []string{"Run 'modtest setup' first", "Check --venv"},
		Cause:       fmt.Errorf("stat: %w", inner),
	}

	quiet := err.Format(false)
	for _, want := range []string{"failed to locate module runtime", "• Run 'modtest setup' first", "• Check --venv"} {
		if !strings.Contains(quiet, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, quiet)
		}
	}
	if strings.Contains(quiet, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", quiet)
	}

	loud := err.Format(true)
	for _, want := range []string{"Error chain:", "1. stat: no such file or directory", "2. no such file or directory"} {
		if !strings.Contains(loud, want) {
			t.Errorf("Format(true) missing %q:\n%s", want, loud)
		}
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return a nil interface")
	}

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("run setup").
		WithResource("../base/module_setup.py").
		WithSuggestion("one").
		WithSuggestion("two").
		WithIssue(SetupScriptNotFoundId).
		Wrap(cause).
		Build()

	if ae.Operation != "run setup" || ae.Resource != "../base/module_setup.py" {
		t.Errorf("unexpected operation/resource: %+v", ae)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want 2 entries", ae.Suggestions)
	}
	if ae.Issue != SetupScriptNotFoundId {
		t.Errorf("Issue = %d, want %d", ae.Issue, SetupScriptNotFoundId)
	}
	if !errors.Is(ae, cause) {
		t.Error("built error should wrap the cause")
	}
}

func TestIssueOf(t *testing.T) {
	t.Parallel()

	linked := NewErrorContext().WithOperation("op").WithIssue(MissingRuntimeId).BuildError()
	if got := IssueOf(fmt.Errorf("outer: %w", linked)); got == nil || got.Id() != MissingRuntimeId {
		t.Errorf("IssueOf() = %v, want MissingRuntime issue", got)
	}
	if IssueOf(NewErrorContext().WithOperation("op").BuildError()) != nil {
		t.Error("IssueOf() should be nil for an error without a linked issue")
	}
	if IssueOf(errors.New("plain")) != nil {
		t.Error("IssueOf() should be nil for a plain error")
	}
}
