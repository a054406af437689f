// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ghforge.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ghforge-cli/internal/config"
	"ghforge-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// verbose enables verbose output
	verbose bool
	// baseDirFlag overrides the base directory (default: the executable's directory)
	baseDirFlag string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "ghforge",
		Short: "Build and launch orchestrator for Grasshopper plugins",
		Long: TitleStyle.Render("ghforge") + SubtitleStyle.Render(" - Build and launch orchestrator for Grasshopper plugins") + `

ghforge compiles an IronPython plugin project into a single distributable
.ghpy module, optionally installs it into the Grasshopper libraries folder,
and can launch or terminate the Rhino host application.

A settings file (` + config.SettingsFileName + `) lives beside the
executable and gates every operation: on first run it is created with
defaults for you to review.

` + SubtitleStyle.Render("Examples:") + `
  ghforge build               Compile the plugin and install it
  ghforge launch --plugin-ui  Start Rhino with the Grasshopper editor
  ghforge config show         Show current settings`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "base-dir", "", "base directory (default is the executable's directory)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(newConfigCommand())
}

// Execute runs the root command through fang for enhanced Cobra styling.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// resolveBaseDir returns the directory every relative path is anchored to:
// the --base-dir flag when set, the executable's directory otherwise.
func resolveBaseDir() (string, error) {
	if baseDirFlag != "" {
		return filepath.Abs(baseDirFlag)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// newLogger builds the stderr logger for a command invocation.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "ghforge",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// readySettings runs the configuration bootstrap. It returns ok=false with
// no error when the settings file was freshly created: the caller must
// terminate with a non-error relaunch notice.
func readySettings(baseDir string) (ok bool, settings *config.Settings, err error) {
	ready, settings, err := config.EnsureReady(baseDir)
	if err != nil {
		reportIssue(issue.SettingsMalformedId, err)
		return false, nil, &ExitError{Code: 1, Err: err}
	}
	if !ready {
		fmt.Println(SuccessStyle.Render(fmt.Sprintf("'%s' created successfully. Review it and relaunch to continue.", config.SettingsFileName)))
		reportIssue(issue.SettingsCreatedId, nil)
		return false, nil, nil
	}
	return true, settings, nil
}

// reportIssue prints the error (when present) and, in verbose mode, the
// rendered markdown help for the known issue.
func reportIssue(id issue.Id, err error) {
	if err != nil {
		var ae *issue.ActionableError
		if errors.As(err, &ae) {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render(ae.Format(verbose)))
		} else {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		}
	}

	if !verbose {
		return
	}
	known := issue.Get(id)
	if known == nil {
		return
	}
	if rendered, renderErr := known.Render("dark"); renderErr == nil {
		fmt.Fprintln(os.Stderr, rendered)
	}
}
