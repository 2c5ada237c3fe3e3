// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"modtest-cli/internal/invoker"
)

// styledReporter prints the invoker's progress lines with the CLI palette.
type styledReporter struct {
	out io.Writer
}

func (r *styledReporter) Starting(plan *invoker.InvocationPlan) {
	rule := SubtitleStyle.Render(strings.Repeat("=", 60))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, TitleStyle.Render(fmt.Sprintf("Running %s Tests", plan.DisplayName)))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintf(r.out, "Running tests in: %s\n", CmdStyle.Render(plan.ModuleRoot))
	fmt.Fprintf(r.out, "Command: %s\n", CmdStyle.Render(invoker.FormatCommand(plan.Command())))
	fmt.Fprintln(r.out)
}
