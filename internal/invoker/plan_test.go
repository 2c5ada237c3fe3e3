// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"modtest-cli/internal/issue"
	"modtest-cli/internal/testutil"
	"modtest-cli/pkg/platform"
)

func TestBuildPlan_Defaults(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	plan, err := BuildPlan(Options{Root: mod.Root, DefaultTimeout: 600}, []string{"-k", "smoke"})
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	want := &InvocationPlan{
		ModuleRoot:            mod.Root,
		DisplayName:           "streams",
		TestsPath:             filepath.Join(mod.Root, "tests"),
		TestPattern:           "test_*.*",
		RuntimePath:           platform.VenvInterpreter(filepath.Join(mod.Root, ".venv")),
		Framework:             "pytest",
		ForwardedArgs:         []string{"-k", "smoke"},
		TimeoutFlag:           "--timeout",
		DefaultTimeoutSeconds: 600,
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("BuildPlan() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlan_Overrides(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	venv := filepath.Join(t.TempDir(), "shared-venv")
	plan, err := BuildPlan(Options{
		Root:        mod.Root,
		DisplayName: "Streams",
		TestsDir:    "suite",
		TestPattern: "*_test.py",
		VenvDir:     venv,
		Framework:   "unittest",
		TimeoutFlag: "--deadline",
	}, nil)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	if plan.DisplayName != "Streams" {
		t.Errorf("DisplayName = %q, want Streams", plan.DisplayName)
	}
	if plan.TestsPath != filepath.Join(mod.Root, "suite") {
		t.Errorf("TestsPath = %q", plan.TestsPath)
	}
	if plan.RuntimePath != platform.VenvInterpreter(venv) {
		t.Errorf("RuntimePath = %q, want absolute venv honored", plan.RuntimePath)
	}
	if plan.InjectsTimeout() {
		t.Error("InjectsTimeout() = true with DefaultTimeout 0")
	}
}

func TestBuildPlan_RelativeRootIsResolved(t *testing.T) {
	mod := testutil.NewModule(t, "streams")
	defer testutil.MustChdir(t, filepath.Dir(mod.Root))()

	plan, err := BuildPlan(Options{Root: "streams"}, nil)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if !filepath.IsAbs(plan.ModuleRoot) {
		t.Errorf("ModuleRoot = %q, want absolute", plan.ModuleRoot)
	}
	if filepath.Base(plan.ModuleRoot) != "streams" {
		t.Errorf("ModuleRoot = %q, want .../streams", plan.ModuleRoot)
	}
}

func TestBuildPlan_RootErrors(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	file := mod.AddFile(t, "README.md", "x")

	tests := []struct {
		name string
		root string
	}{
		{"empty", ""},
		{"missing", filepath.Join(mod.Root, "nope")},
		{"file", file},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := BuildPlan(Options{Root: tt.root}, nil)
			if !errors.Is(err, ErrModuleRootNotFound) {
				t.Fatalf("BuildPlan() error = %v, want ErrModuleRootNotFound", err)
			}
			if got := issue.IssueOf(err); got == nil || got.Id() != issue.ModuleRootNotFoundId {
				t.Errorf("IssueOf() = %v, want ModuleRootNotFound guide", got)
			}
		})
	}
}

func TestBuildPlan_NegativeTimeout(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	if _, err := BuildPlan(Options{Root: mod.Root, DefaultTimeout: -1}, nil); !errors.Is(err, ErrInvalidTimeout) {
		t.Errorf("BuildPlan() error = %v, want ErrInvalidTimeout", err)
	}
}

func TestBuildPlan_DoesNotAliasArgs(t *testing.T) {
	t.Parallel()

	mod := testutil.NewModule(t, "streams")
	args := []string{"-x"}
	plan, err := BuildPlan(Options{Root: mod.Root, DefaultTimeout: 600}, args)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	args[0] = "-q"
	_ = plan.Command()

	if diff := cmp.Diff([]string{"-x"}, plan.ForwardedArgs); diff != "" {
		t.Errorf("ForwardedArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestInvocationPlan_Command(t *testing.T) {
	t.Parallel()

	base := InvocationPlan{
		RuntimePath:           "/m/.venv/bin/python",
		Framework:             "pytest",
		TimeoutFlag:           "--timeout",
		DefaultTimeoutSeconds: 600,
	}

	tests := []struct {
		name    string
		args    []string
		timeout int
		want    []string
	}{
		{
			name:    "no args",
			timeout: 600,
			want:    []string{"/m/.venv/bin/python", "-m", "pytest", "--timeout", "600"},
		},
		{
			name:    "args keep order before default",
			args:    []string{"-k", "smoke", "-v"},
			timeout: 600,
			want:    []string{"/m/.venv/bin/python", "-m", "pytest", "-k", "smoke", "-v", "--timeout", "600"},
		},
		{
			name:    "explicit timeout",
			args:    []string{"--timeout", "30"},
			timeout: 600,
			want:    []string{"/m/.venv/bin/python", "-m", "pytest", "--timeout", "30"},
		},
		{
			name:    "inline timeout",
			args:    []string{"--timeout=30", "-q"},
			timeout: 600,
			want:    []string{"/m/.venv/bin/python", "-m", "pytest", "--timeout=30", "-q"},
		},
		{
			name:    "related timeout option",
			args:    []string{"--timeout-method=thread"},
			timeout: 600,
			want:    []string{"/m/.venv/bin/python", "-m", "pytest", "--timeout-method=thread"},
		},
		{
			name:    "injection disabled",
			args:    []string{"-q"},
			timeout: 0,
			want:    []string{"/m/.venv/bin/python", "-m", "pytest", "-q"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan := base
			plan.ForwardedArgs = tt.args
			plan.DefaultTimeoutSeconds = tt.timeout
			if diff := cmp.Diff(tt.want, plan.Command()); diff != "" {
				t.Errorf("Command() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHasTimeoutOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"absent", []string{"-q"}, "--timeout", false},
		{"separate", []string{"--timeout", "5"}, "--timeout", true},
		{"inline", []string{"--timeout=5"}, "--timeout", true},
		{"related dash option", []string{"--timeout-method", "thread"}, "--timeout", true},
		{"related inline option", []string{"--timeout-method=thread"}, "--timeout", true},
		{"related underscore option", []string{"--timeout_method", "signal"}, "--timeout", true},
		{"related bare option", []string{"-x", "--timeout-func-only"}, "--timeout", true},
		{"value equal to flag text", []string{"-k", "timeout"}, "--timeout", false},
		{"empty flag", []string{"--timeout"}, "", false},
		{"nil args", nil, "--timeout", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasTimeoutOption(tt.args, tt.flag); got != tt.want {
				t.Errorf("HasTimeoutOption(%q, %q) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}
