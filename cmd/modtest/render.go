// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"modtest-cli/internal/config"
	"modtest-cli/internal/issue"
	"modtest-cli/pkg/types"
)

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// fail renders err (and its issue guide, if any) to stderr and returns an
// *ExitError with code 1 so fang does not print it a second time.
func (a *App) fail(err error, verbose bool, scheme config.ColorScheme) error {
	return a.failWithCode(types.ExitFailure, err, verbose, scheme)
}

func (a *App) failWithCode(code types.ExitCode, err error, verbose bool, scheme config.ColorScheme) error {
	if guide := issue.IssueOf(err); guide != nil {
		if rendered, renderErr := guide.Render(scheme.GlamourStyle()); renderErr == nil {
			fmt.Fprint(a.stderr, rendered)
		}
	}
	fmt.Fprintf(a.stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
	if code.IsSuccess() {
		code = types.ExitFailure
	}
	return &ExitError{Code: code, Err: err}
}
