// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"modtest-cli/internal/invoker"
	"modtest-cli/internal/issue"
	"modtest-cli/internal/moduleroot"
	"modtest-cli/internal/pyproject"
)

// invocationFlags are the per-module overrides accepted by test and plan.
type invocationFlags struct {
	root    string
	name    string
	venv    string
	timeout int
}

func (f *invocationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "module root (default: nearest parent holding a root marker)")
	cmd.Flags().StringVar(&f.name, "name", "", "display name used in progress output")
	cmd.Flags().StringVar(&f.venv, "venv", "", "virtual environment directory, relative to the module root")
	cmd.Flags().IntVar(&f.timeout, "timeout-default", 0, "timeout injected when no --timeout is forwarded (0 disables)")
	// Everything from the first positional argument on belongs to the framework.
	cmd.Flags().SetInterspersed(false)
}

// resolveRoot returns the --root value or discovers the module root from the
// working directory.
func (a *App) resolveRoot(s *session, flagRoot string) (string, error) {
	if flagRoot != "" {
		return flagRoot, nil
	}
	wd, err := a.getwd()
	if err != nil {
		return "", err
	}
	root, err := moduleroot.Find(wd, s.cfg.RootMarkers)
	if err != nil {
		return "", err
	}
	s.logger.Debug("discovered module root", "root", root, "from", wd)
	return root, nil
}

// resolveOptions layers configuration, pyproject.toml and flags, in that order
// of increasing precedence.
func (a *App) resolveOptions(cmd *cobra.Command, s *session, f *invocationFlags) (invoker.Options, error) {
	root, err := a.resolveRoot(s, f.root)
	if err != nil {
		return invoker.Options{}, err
	}

	opts := invoker.OptionsFromConfig(s.cfg, root)

	settings, err := pyproject.Load(root)
	if err != nil {
		return invoker.Options{}, err
	}
	opts = settings.Apply(opts)

	if f.name != "" {
		opts.DisplayName = f.name
	}
	if f.venv != "" {
		opts.VenvDir = f.venv
	}
	if cmd.Flags().Changed("timeout-default") {
		if f.timeout < 0 {
			return invoker.Options{}, issue.NewErrorContext().
				WithOperation("parse --timeout-default").
				WithResource(strconv.Itoa(f.timeout)).
				WithSuggestion("Pass 0 to disable the default timeout").
				Wrap(invoker.ErrInvalidTimeout).
				BuildError()
		}
		opts.DefaultTimeout = f.timeout
	}
	return opts, nil
}
