// SPDX-License-Identifier: MPL-2.0

package pyproject

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"modtest-cli/internal/invoker"
	"modtest-cli/internal/issue"
	"modtest-cli/internal/testutil"
)

func intPtr(v int) *int { return &v }

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	s, err := Load(mod.Root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(&Settings{}, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ToolTable(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	mod.AddFile(t, FileName, `
[build-system]
requires = ["setuptools"]

[project]
name = "streams-core"

[tool.pytest.ini_options]
addopts = "-q"

[tool.modtest]
display-name = "Streams"
tests-dir = "suite"
test-pattern = "*_test.py"
venv-dir = "venv"
framework = "unittest"
timeout-flag = "--deadline"
default-timeout = 0
`)

	s, err := Load(mod.Root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Settings{
		DisplayName:    "Streams",
		TestsDir:       "suite",
		TestPattern:    "*_test.py",
		VenvDir:        "venv",
		Framework:      "unittest",
		TimeoutFlag:    "--deadline",
		DefaultTimeout: intPtr(0),
		ProjectName:    "streams-core",
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[tool.modtest\nframework = 1"},
		{"wrong type", "[tool.modtest]\ndefault-timeout = \"ten\""},
		{"negative timeout", "[tool.modtest]\ndefault-timeout = -1"},
		{"flag without dash", "[tool.modtest]\ntimeout-flag = \"timeout\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("pyproject.toml", []byte(tt.data))
			if !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("Parse() error = %v, want ErrInvalidSettings", err)
			}
			if got := issue.IssueOf(err); got == nil || got.Id() != issue.ModuleSettingsInvalidId {
				t.Errorf("IssueOf() = %v, want ModuleSettingsInvalid guide", got)
			}
		})
	}
}

func TestSettings_Apply(t *testing.T) {
	t.Parallel()

	base := invoker.Options{
		Root:           "/src/streams",
		TestsDir:       "tests",
		VenvDir:        ".venv",
		Framework:      "pytest",
		TimeoutFlag:    "--timeout",
		DefaultTimeout: 600,
	}

	tests := []struct {
		name     string
		settings Settings
		want     invoker.Options
	}{
		{
			name:     "empty keeps options",
			settings: Settings{},
			want:     base,
		},
		{
			name:     "project name as display name",
			settings: Settings{ProjectName: "streams-core"},
			want: func() invoker.Options {
				o := base
				o.DisplayName = "streams-core"
				return o
			}(),
		},
		{
			name:     "display-name wins over project name",
			settings: Settings{DisplayName: "Streams", ProjectName: "streams-core"},
			want: func() invoker.Options {
				o := base
				o.DisplayName = "Streams"
				return o
			}(),
		},
		{
			name:     "overrides",
			settings: Settings{TestsDir: "suite", VenvDir: "venv", DefaultTimeout: intPtr(0)},
			want: func() invoker.Options {
				o := base
				o.TestsDir = "suite"
				o.VenvDir = "venv"
				o.DefaultTimeout = 0
				return o
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.settings.Apply(base)); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettings_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		settings Settings
		want     string
	}{
		{Settings{}, ""},
		{Settings{ProjectName: "streams-core"}, "streams-core"},
		{Settings{DisplayName: "Streams", ProjectName: "streams-core"}, "Streams"},
	}
	for _, tt := range tests {
		if got := tt.settings.Name(); got != tt.want {
			t.Errorf("%+v.Name() = %q, want %q", tt.settings, got, tt.want)
		}
	}
}
