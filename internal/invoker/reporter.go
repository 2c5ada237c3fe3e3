// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 60

type (
	// Reporter prints the progress lines emitted right before the test process
	// is spawned.
	Reporter interface {
		Starting(plan *InvocationPlan)
	}

	// TextReporter writes unstyled progress lines.
	TextReporter struct {
		Out io.Writer
	}
)

// Starting prints the banner, the module root and the command line.
func (r *TextReporter) Starting(plan *InvocationPlan) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintf(r.Out, "Running %s Tests\n", plan.DisplayName)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintf(r.Out, "Running tests in: %s\n", plan.ModuleRoot)
	fmt.Fprintf(r.Out, "Command: %s\n", FormatCommand(plan.Command()))
	fmt.Fprintln(r.Out)
}
