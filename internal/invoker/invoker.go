// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"modtest-cli/internal/issue"
	"modtest-cli/pkg/types"
)

type (
	// Invoker runs module test suites. It holds only its collaborators; every
	// Run is independent.
	Invoker struct {
		executor Executor
		reporter Reporter
		logger   *log.Logger
	}

	// Dependencies defines the injection points for building an Invoker. Nil
	// fields are replaced with production defaults by New.
	Dependencies struct {
		Executor Executor
		Reporter Reporter
		Logger   *log.Logger
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// New creates an Invoker with defaults for omitted dependencies: real child
// processes sharing the process's standard streams, plain-text progress on
// Stdout and a discarding logger.
func New(deps Dependencies) *Invoker {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Executor == nil {
		deps.Executor = &ProcessExecutor{Stdin: deps.Stdin, Stdout: deps.Stdout, Stderr: deps.Stderr}
	}
	if deps.Reporter == nil {
		deps.Reporter = &TextReporter{Out: deps.Stdout}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Invoker{executor: deps.Executor, reporter: deps.Reporter, logger: deps.Logger}
}

// Run executes the module's test suite and returns the exit code the caller
// should exit with.
//
// No tests directory, or no matching test file in it, yields ExitSuccess
// without spawning. A missing venv interpreter yields ExitFailure and an error
// wrapping ErrMissingRuntime. Otherwise the framework's exit code is returned
// verbatim with a nil error, whatever its value.
func (inv *Invoker) Run(ctx context.Context, opts Options, forwardedArgs []string) (types.ExitCode, error) {
	plan, err := BuildPlan(opts, forwardedArgs)
	if err != nil {
		return types.ExitFailure, err
	}
	inv.logger.Debug("resolved module root", "root", plan.ModuleRoot)

	found, err := plan.HasTests()
	if err != nil {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("discover tests").
			WithResource(plan.TestsPath).
			WithSuggestion("Check the permissions of the tests directory").
			Wrap(err).
			BuildError()
	}
	if !found {
		inv.logger.Debug("no tests found", "path", plan.TestsPath, "pattern", plan.TestPattern)
		return types.ExitSuccess, nil
	}

	if err := plan.CheckRuntime(); err != nil {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("locate module runtime").
			WithResource(plan.RuntimePath).
			WithSuggestion("Run 'modtest setup' first to create the virtual environment").
			WithIssue(issue.MissingRuntimeId).
			Wrap(err).
			BuildError()
	}
	inv.logger.Debug("using runtime", "path", plan.RuntimePath)
	if plan.InjectsTimeout() {
		inv.logger.Debug("injecting default timeout", "flag", plan.TimeoutFlag, "seconds", plan.DefaultTimeoutSeconds)
	}

	if err := ctx.Err(); err != nil {
		return types.ExitFailure, err
	}

	inv.reporter.Starting(plan)

	code, err := inv.executor.Execute(ctx, plan.Command(), plan.ModuleRoot)
	if err != nil {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("run tests").
			WithResource(plan.RuntimePath).
			WithIssue(issue.TestRunFailedId).
			Wrap(err).
			BuildError()
	}
	inv.logger.Debug("test process exited", "code", int(code))
	return code, nil
}
