// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"ghforge-cli/internal/host"
	"ghforge-cli/internal/issue"

	"github.com/spf13/cobra"
)

var launchPluginUI bool

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the host application",
	Long: `Start the configured host application (Rhino) and block until it exits.

With --plugin-ui the Grasshopper editor window is loaded on startup, which
picks up any plugin module installed in the libraries folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		baseDir, err := resolveBaseDir()
		if err != nil {
			return &ExitError{Code: 1, Err: err}
		}

		ok, settings, err := readySettings(baseDir)
		if err != nil || !ok {
			return err
		}

		controller := &host.Controller{ExePath: settings.HostAppPath, Logger: logger}
		if err := controller.Launch(cmd.Context(), launchPluginUI); err != nil {
			reportIssue(issue.HostAppNotFoundId, err)
			return &ExitError{Code: 1, Err: err}
		}
		return nil
	},
}

var killCmd = &cobra.Command{
	Use:   "kill",
	Short: "Terminate the host application",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		baseDir, err := resolveBaseDir()
		if err != nil {
			return &ExitError{Code: 1, Err: err}
		}

		ok, settings, err := readySettings(baseDir)
		if err != nil || !ok {
			return err
		}

		controller := &host.Controller{ExePath: settings.HostAppPath, Logger: logger}
		return controller.Kill(cmd.Context())
	},
}

func init() {
	launchCmd.Flags().BoolVar(&launchPluginUI, "plugin-ui", false, "load the plugin editor window on startup")
}
