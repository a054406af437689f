// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"ghforge-cli/internal/config"
	"ghforge-cli/internal/issue"
	"ghforge-cli/internal/pipeline"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `ghforge config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ghforge settings",
		Long: `Manage ghforge settings.

Settings are stored in ` + config.SettingsFileName + ` beside the ghforge
executable. The file gates every build and launch operation: a freshly
created file must be reviewed before ghforge will proceed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default settings file if absent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initSettings()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, err := resolveBaseDir()
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Println(config.SettingsPath(baseDir))
			return nil
		},
	})

	return cfgCmd
}

func showSettings() error {
	baseDir, err := resolveBaseDir()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	settings, err := config.Load(config.SettingsPath(baseDir))
	if err != nil {
		reportIssue(issue.SettingsMalformedId, err)
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Println(TitleStyle.Render("ghforge settings"))
	fmt.Println(SubtitleStyle.Render(config.SettingsPath(baseDir)))
	fmt.Println()
	fmt.Printf("  toolchain_path:     %s%s\n", settings.ToolchainPath, toolchainNote(settings.ToolchainPath))
	fmt.Printf("  host_app_path:      %s\n", settings.HostAppPath)
	fmt.Printf("  plugin_install_dir: %s\n", settings.PluginInstallDir)
	fmt.Printf("  build_output_dir:   %s\n", settings.BuildOutputDir)
	return nil
}

// toolchainNote annotates the toolchain path when the executable cannot be
// found, so a bad setting is visible before the first build attempt.
func toolchainNote(path string) string {
	if pipeline.NewIronPythonCompiler(path).Available() {
		return ""
	}
	return WarningStyle.Render("  (not found)")
}

func initSettings() error {
	baseDir, err := resolveBaseDir()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	ready, _, err := config.EnsureReady(baseDir)
	if err != nil {
		reportIssue(issue.SettingsMalformedId, err)
		return &ExitError{Code: 1, Err: err}
	}
	if ready {
		fmt.Println(SubtitleStyle.Render("Settings file already exists: " + config.SettingsPath(baseDir)))
		return nil
	}

	fmt.Println(SuccessStyle.Render("Created " + config.SettingsPath(baseDir)))
	fmt.Println(SubtitleStyle.Render("Review the values before running a build."))
	return nil
}
