// SPDX-License-Identifier: MPL-2.0

package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	"modtest-cli/internal/config"
	"modtest-cli/internal/invoker"
	"modtest-cli/internal/issue"
	"modtest-cli/pkg/types"
)

var (
	// ErrSetupScriptNotFound is returned when the base setup script does not exist.
	ErrSetupScriptNotFound = errors.New("base setup script not found")
	// ErrInterpreterNotFound is returned when no Python interpreter can run the
	// base setup script.
	ErrInterpreterNotFound = errors.New("python interpreter not found")
)

// interpreterCandidates are searched on PATH when no interpreter is configured.
var interpreterCandidates = []string{"python3", "python"}

type (
	// Request describes one setup delegation.
	Request struct {
		// Root is the absolute module root.
		Root string
		// Name is passed as --project-name; defaults to the root's base name.
		Name string
		// BaseScript is the shared setup script; relative paths resolve against Root.
		BaseScript string
		// Python is the interpreter to run BaseScript with; empty means search PATH.
		Python string
	}

	// Delegator runs the base setup script for a module.
	Delegator struct {
		executor invoker.Executor
		logger   *log.Logger
		lookPath func(string) (string, error)
	}
)

// RequestFromConfig seeds a Request for root from the loaded configuration.
func RequestFromConfig(cfg *config.Config, root string) Request {
	return Request{Root: root, BaseScript: cfg.Setup.BaseScript, Python: cfg.Setup.Python}
}

// NewDelegator creates a Delegator spawning through executor. A nil logger
// discards debug output.
func NewDelegator(executor invoker.Executor, logger *log.Logger) *Delegator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Delegator{executor: executor, logger: logger, lookPath: exec.LookPath}
}

// Argv returns the delegated command line for req.
func Argv(python, baseScript string, req Request) []string {
	return []string{python, baseScript, "--project-dir", req.Root, "--project-name", req.Name}
}

// Run locates the base script and an interpreter, runs the script for the
// module and returns its exit code verbatim.
func (d *Delegator) Run(ctx context.Context, req Request) (types.ExitCode, error) {
	root, err := invoker.ResolveRoot(req.Root)
	if err != nil {
		return types.ExitFailure, err
	}
	req.Root = root
	if req.Name == "" {
		req.Name = filepath.Base(req.Root)
	}
	if req.BaseScript == "" {
		req.BaseScript = config.DefaultBaseScript
	}

	base := req.BaseScript
	if !filepath.IsAbs(base) {
		base = filepath.Join(req.Root, filepath.FromSlash(base))
	}
	base = filepath.Clean(base)
	if info, err := os.Stat(base); err != nil || info.IsDir() {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("locate base setup script").
			WithResource(base).
			WithSuggestion("Check that the shared base module sits next to this module").
			WithSuggestion("Set setup.base_script in the modtest config").
			WithIssue(issue.SetupScriptNotFoundId).
			Wrap(ErrSetupScriptNotFound).
			BuildError()
	}

	python, err := d.findInterpreter(req.Python)
	if err != nil {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("find python interpreter").
			WithResource(req.Python).
			WithSuggestion("Install Python 3 or set setup.python in the modtest config").
			WithIssue(issue.InterpreterNotFoundId).
			Wrap(err).
			BuildError()
	}

	if err := ctx.Err(); err != nil {
		return types.ExitFailure, err
	}

	argv := Argv(python, base, req)
	d.logger.Debug("delegating setup", "argv", argv)
	code, err := d.executor.Execute(ctx, argv, req.Root)
	if err != nil {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("run base setup script").
			WithResource(base).
			Wrap(err).
			BuildError()
	}
	return code, nil
}

func (d *Delegator) findInterpreter(configured string) (string, error) {
	candidates := interpreterCandidates
	if configured != "" {
		candidates = []string{configured}
	}
	for _, name := range candidates {
		if path, err := d.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v", ErrInterpreterNotFound, candidates)
}
