// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"modtest-cli/internal/invoker"
)

func newPlanCommand(app *App, ro *rootOptions) *cobra.Command {
	flags := &invocationFlags{}
	cmd := &cobra.Command{
		Use:   "plan [flags] [-- framework args...]",
		Short: "Show what 'modtest test' would run, without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPlan(cmd, app, ro, flags, args)
		},
	}
	flags.register(cmd)
	return cmd
}

func showPlan(cmd *cobra.Command, app *App, ro *rootOptions, flags *invocationFlags, args []string) error {
	s, err := app.begin(cmd.Context(), ro)
	if err != nil {
		return err
	}
	scheme := s.cfg.UI.ColorScheme

	opts, err := app.resolveOptions(cmd, s, flags)
	if err != nil {
		return app.fail(err, s.verbose, scheme)
	}
	plan, err := invoker.BuildPlan(opts, args)
	if err != nil {
		return app.fail(err, s.verbose, scheme)
	}
	hasTests, err := plan.HasTests()
	if err != nil {
		return app.fail(err, s.verbose, scheme)
	}

	writePlan(app.stdout, plan, hasTests, plan.CheckRuntime() == nil)
	return nil
}

func writePlan(w io.Writer, plan *invoker.InvocationPlan, hasTests, runtimeOK bool) {
	fmt.Fprintln(w, TitleStyle.Render(plan.DisplayName+" test plan"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Module root"), plan.ModuleRoot)

	tests := SuccessStyle.Render("found")
	if !hasTests {
		tests = WarningStyle.Render("none (would exit 0 without running)")
	}
	fmt.Fprintf(w, "%s: %s (%s) %s\n", CmdStyle.Render("Tests"), plan.TestsPath, plan.TestPattern, tests)

	runtime := SuccessStyle.Render("present")
	if !runtimeOK {
		runtime = WarningStyle.Render("missing (run 'modtest setup')")
	}
	fmt.Fprintf(w, "%s: %s %s\n", CmdStyle.Render("Runtime"), plan.RuntimePath, runtime)

	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Command"), invoker.FormatCommand(plan.Command()))
}
