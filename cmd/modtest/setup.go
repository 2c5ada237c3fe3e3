// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"modtest-cli/internal/invoker"
	"modtest-cli/internal/pyproject"
	"modtest-cli/internal/setup"
)

func newSetupCommand(app *App, ro *rootOptions) *cobra.Command {
	var root, name string
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the module's virtual environment via the shared base setup script",
		Long: `Run the shared base setup script (../base/module_setup.py by default)
for this module, passing --project-dir and --project-name.

The script's exit status is returned unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.begin(cmd.Context(), ro)
			if err != nil {
				return err
			}
			scheme := s.cfg.UI.ColorScheme

			moduleRoot, err := app.resolveRoot(s, root)
			if err != nil {
				return app.fail(err, s.verbose, scheme)
			}
			if moduleRoot, err = invoker.ResolveRoot(moduleRoot); err != nil {
				return app.fail(err, s.verbose, scheme)
			}

			req := setup.RequestFromConfig(s.cfg, moduleRoot)
			req.Name = name
			if req.Name == "" {
				settings, err := pyproject.Load(moduleRoot)
				if err != nil {
					return app.fail(err, s.verbose, scheme)
				}
				req.Name = settings.Name()
			}

			code, err := app.newDelegator(s).Run(cmd.Context(), req)
			if err != nil {
				return app.failWithCode(code, err, s.verbose, scheme)
			}
			if !code.IsSuccess() {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "module root (default: nearest parent holding a root marker)")
	cmd.Flags().StringVar(&name, "name", "", "project name passed to the base setup script")
	return cmd
}
