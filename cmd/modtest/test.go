// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

func newTestCommand(app *App, ro *rootOptions) *cobra.Command {
	flags := &invocationFlags{}
	cmd := &cobra.Command{
		Use:   "test [flags] [-- framework args...]",
		Short: "Run the module's tests in its virtual environment",
		Long: `Run the module's test suite with the module's own interpreter.

Positional arguments, and everything after "--", are forwarded to the test
framework in order. A default "--timeout 600" is appended unless a timeout
option is already among them.

Exit status is 0 when there are no tests, otherwise the framework's own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(cmd, app, ro, flags, args)
		},
	}
	flags.register(cmd)
	return cmd
}

func runTests(cmd *cobra.Command, app *App, ro *rootOptions, flags *invocationFlags, args []string) error {
	s, err := app.begin(cmd.Context(), ro)
	if err != nil {
		return err
	}

	opts, err := app.resolveOptions(cmd, s, flags)
	if err != nil {
		return app.fail(err, s.verbose, s.cfg.UI.ColorScheme)
	}

	code, err := app.newInvoker(s).Run(cmd.Context(), opts, args)
	if err != nil {
		return app.failWithCode(code, err, s.verbose, s.cfg.UI.ColorScheme)
	}
	if !code.IsSuccess() {
		s.logger.Debug("tests failed", "code", int(code))
		return &ExitError{Code: code}
	}
	return nil
}
