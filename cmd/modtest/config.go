// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"modtest-cli/internal/config"
)

// newConfigCommand creates the `modtest config` command tree.
func newConfigCommand(app *App, ro *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modtest configuration",
		Long: `Manage modtest configuration.

Configuration is stored in:
  - Linux: ~/.config/modtest/config.cue
  - macOS: ~/Library/Application Support/modtest/config.cue
  - Windows: %APPDATA%\modtest\config.cue

Every key can be overridden with a MODTEST_* environment variable,
for example MODTEST_TESTS_DEFAULT_TIMEOUT=0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.begin(cmd.Context(), ro)
			if err != nil {
				return err
			}
			showConfig(app.stdout, s.cfg)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := app.Config.Init(config.LoadOptions{ConfigFilePath: ro.configPath})
			if err != nil {
				return app.fail(err, ro.verbose, config.ColorSchemeAuto)
			}
			if created {
				fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			} else {
				fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Config.Path(config.LoadOptions{ConfigFilePath: ro.configPath})
			if err != nil {
				return app.fail(err, ro.verbose, config.ColorSchemeAuto)
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfg.SourcePath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfg.SourcePath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("venv_dir"), valueStyle.Render(cfg.VenvDir))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("tests"))
	fmt.Fprintf(w, "  dir: %s\n", valueStyle.Render(cfg.Tests.Dir))
	fmt.Fprintf(w, "  pattern: %s\n", valueStyle.Render(cfg.Tests.Pattern))
	fmt.Fprintf(w, "  framework: %s\n", valueStyle.Render(cfg.Tests.Framework))
	fmt.Fprintf(w, "  timeout_flag: %s\n", valueStyle.Render(cfg.Tests.TimeoutFlag))
	fmt.Fprintf(w, "  default_timeout: %s\n", valueStyle.Render(fmt.Sprintf("%d", cfg.Tests.DefaultTimeout)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("setup"))
	fmt.Fprintf(w, "  base_script: %s\n", valueStyle.Render(cfg.Setup.BaseScript))
	python := cfg.Setup.Python
	if python == "" {
		python = SubtitleStyle.Render("(python3, python on PATH)")
	} else {
		python = valueStyle.Render(python)
	}
	fmt.Fprintf(w, "  python: %s\n", python)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("root_markers"), valueStyle.Render(strings.Join(cfg.RootMarkers, ", ")))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
}
