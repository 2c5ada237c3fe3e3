// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"modtest-cli/internal/issue"
	"modtest-cli/pkg/platform"
)

// InvocationPlan is the transient description of one test run. It is built once
// per invocation, used to spawn at most one process, then discarded.
type InvocationPlan struct {
	// ModuleRoot is the absolute module root; also the child's working directory.
	ModuleRoot string
	// DisplayName names the module in progress output.
	DisplayName string
	// TestsPath is the directory searched for test files.
	TestsPath string
	// TestPattern is the base-name glob identifying test files.
	TestPattern string
	// RuntimePath is the module's venv interpreter.
	RuntimePath string
	// Framework is the Python module run with -m.
	Framework string
	// ForwardedArgs are the caller's arguments, in order. Never mutated.
	ForwardedArgs []string
	// TimeoutFlag is the option checked for and injected with DefaultTimeoutSeconds.
	TimeoutFlag string
	// DefaultTimeoutSeconds is injected when ForwardedArgs carry no TimeoutFlag; 0 disables it.
	DefaultTimeoutSeconds int
}

// BuildPlan resolves opts.Root to an absolute directory and derives the plan.
// It fails with ErrModuleRootNotFound when the root is empty, unresolvable or
// not a directory, and with ErrInvalidTimeout for a negative DefaultTimeout.
// No other filesystem checks happen here.
func BuildPlan(opts Options, forwardedArgs []string) (*InvocationPlan, error) {
	opts = opts.withDefaults()
	if opts.DefaultTimeout < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTimeout, opts.DefaultTimeout)
	}

	root, err := ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	name := opts.DisplayName
	if name == "" {
		name = filepath.Base(root)
	}

	venvDir := opts.VenvDir
	if !filepath.IsAbs(venvDir) {
		venvDir = filepath.Join(root, venvDir)
	}

	return &InvocationPlan{
		ModuleRoot:            root,
		DisplayName:           name,
		TestsPath:             filepath.Join(root, opts.TestsDir),
		TestPattern:           opts.TestPattern,
		RuntimePath:           platform.VenvInterpreter(venvDir),
		Framework:             opts.Framework,
		ForwardedArgs:         slices.Clone(forwardedArgs),
		TimeoutFlag:           opts.TimeoutFlag,
		DefaultTimeoutSeconds: opts.DefaultTimeout,
	}, nil
}

// ResolveRoot makes root absolute and checks that it is an existing directory.
// Failures wrap ErrModuleRootNotFound.
func ResolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", rootError(root, ErrModuleRootNotFound)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", rootError(root, errors.Join(ErrModuleRootNotFound, err))
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", rootError(abs, errors.Join(ErrModuleRootNotFound, err))
	}
	if !info.IsDir() {
		return "", rootError(abs, fmt.Errorf("%w: not a directory", ErrModuleRootNotFound))
	}
	return abs, nil
}

func rootError(root string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("resolve module root").
		WithResource(root).
		WithSuggestion("Pass the module directory with --root").
		WithIssue(issue.ModuleRootNotFoundId).
		Wrap(cause).
		BuildError()
}

// InjectsTimeout reports whether Args appends the default timeout pair.
func (p *InvocationPlan) InjectsTimeout() bool {
	return p.DefaultTimeoutSeconds > 0 && !HasTimeoutOption(p.ForwardedArgs, p.TimeoutFlag)
}

// Args returns the framework arguments: ForwardedArgs, followed by exactly one
// "<TimeoutFlag> <DefaultTimeoutSeconds>" pair when the caller passed none.
func (p *InvocationPlan) Args() []string {
	args := slices.Clone(p.ForwardedArgs)
	if p.InjectsTimeout() {
		args = append(args, p.TimeoutFlag, strconv.Itoa(p.DefaultTimeoutSeconds))
	}
	return args
}

// Command returns the full argv: [RuntimePath, "-m", Framework, Args()...].
func (p *InvocationPlan) Command() []string {
	return append([]string{p.RuntimePath, "-m", p.Framework}, p.Args()...)
}

// HasTimeoutOption reports whether args already carry a timeout-related option:
// any token starting with flag, so "--timeout 30", "--timeout=30" and sibling
// options such as "--timeout-method=thread" all count. Plain values like the
// "timeout" in "-k timeout" do not.
func HasTimeoutOption(args []string, flag string) bool {
	if flag == "" {
		return false
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, flag) {
			return true
		}
	}
	return false
}
