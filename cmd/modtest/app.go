// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"modtest-cli/internal/config"
	"modtest-cli/internal/invoker"
	"modtest-cli/internal/setup"
)

type (
	// App wires CLI services and shared dependencies. All command handlers
	// receive an App reference.
	App struct {
		Config   config.Provider
		Executor invoker.Executor
		getwd    func() (string, error)
		stdin    io.Reader
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   config.Provider
		Executor invoker.Executor
		Getwd    func() (string, error)
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// rootOptions holds the persistent flags shared by every subcommand.
	rootOptions struct {
		configPath string
		verbose    bool
	}

	// session is the per-command state derived from flags and configuration.
	session struct {
		cfg     *config.Config
		logger  *log.Logger
		verbose bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Executor == nil {
		deps.Executor = &invoker.ProcessExecutor{Stdin: deps.Stdin, Stdout: deps.Stdout, Stderr: deps.Stderr}
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	return &App{
		Config:   deps.Config,
		Executor: deps.Executor,
		getwd:    deps.Getwd,
		stdin:    deps.Stdin,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// begin loads configuration and builds the logger for one command. A config
// failure is rendered and returned as an *ExitError.
func (a *App) begin(ctx context.Context, ro *rootOptions) (*session, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: ro.configPath})
	if err != nil {
		return nil, a.fail(err, ro.verbose, config.ColorSchemeAuto)
	}

	verbose := ro.verbose || cfg.UI.Verbose
	logger := newLogger(a.stderr, verbose)
	if cfg.SourcePath != "" {
		logger.Debug("loaded configuration", "path", cfg.SourcePath)
	} else {
		logger.Debug("no configuration file, using defaults")
	}
	return &session{cfg: cfg, logger: logger, verbose: verbose}, nil
}

func (a *App) newInvoker(s *session) *invoker.Invoker {
	return invoker.New(invoker.Dependencies{
		Executor: a.Executor,
		Reporter: &styledReporter{out: a.stdout},
		Logger:   s.logger,
		Stdin:    a.stdin,
		Stdout:   a.stdout,
		Stderr:   a.stderr,
	})
}

func (a *App) newDelegator(s *session) *setup.Delegator {
	return setup.NewDelegator(a.Executor, s.logger)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}
