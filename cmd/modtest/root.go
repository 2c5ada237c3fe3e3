// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the modtest command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	ro := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "modtest",
		Short: "Run a Python module's tests inside its own virtual environment",
		Long: TitleStyle.Render("modtest") + SubtitleStyle.Render(" - run a module's tests in its own venv") + `

modtest looks for test files under the module's tests directory, runs
"<venv>/bin/python -m pytest" from the module root with your arguments
(adding a default --timeout when you gave none), and exits with the
test framework's exit code. A module without tests passes trivially.

` + SubtitleStyle.Render("Examples:") + `
  modtest test                      Run the current module's tests
  modtest test -- -k smoke -x       Forward arguments to pytest
  modtest test --root ../streams    Test another module
  modtest plan                      Show what would run
  modtest setup                     Create the module's venv via the base setup script`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&ro.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/modtest/config.cue)")

	rootCmd.AddCommand(newTestCommand(app, ro))
	rootCmd.AddCommand(newPlanCommand(app, ro))
	rootCmd.AddCommand(newSetupCommand(app, ro))
	rootCmd.AddCommand(newConfigCommand(app, ro))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies) int {
	app := NewApp(deps)
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code)
	}
	return 1
}

// Main is the process entry point.
func Main() int {
	return Execute(context.Background(), os.Args[1:], Dependencies{})
}

// handleError prints errors that handlers did not already render. An
// *ExitError has been reported by its handler (or by the child process).
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
