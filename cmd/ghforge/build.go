// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"ghforge-cli/internal/app"
	"ghforge-cli/internal/issue"
	"ghforge-cli/internal/pipeline"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the plugin into a distributable module",
	Long: `Compile the plugin project into a single .ghpy module.

The shared source package is staged into the plugin build tree, all plugin
sources are collected and compiled through the configured toolchain, and
the resulting artifact is copied to the configured build output directory.
The staged copy is removed afterwards, whatever the build outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

func runBuild(cmd *cobra.Command) error {
	logger := newLogger()

	baseDir, err := resolveBaseDir()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	ok, settings, err := readySettings(baseDir)
	if err != nil || !ok {
		return err
	}

	manifest, err := app.LoadManifest(baseDir)
	if err != nil {
		reportIssue(issue.SettingsMalformedId, err)
		return &ExitError{Code: 1, Err: err}
	}

	compiler := pipeline.NewIronPythonCompiler(settings.ToolchainPath)
	orchestrator := app.New(baseDir, settings, manifest, compiler, logger)

	result, err := orchestrator.Run(cmd.Context())
	if err != nil {
		reportIssue(issue.StagingSourceMissingId, err)
		return &ExitError{Code: 1, Err: err}
	}

	if !result.Success {
		if result.Failure == pipeline.FailureToolchainUnavailable {
			reportIssue(issue.ToolchainUnavailableId, nil)
		} else {
			reportIssue(issue.CompileFailedId, nil)
		}
		return &ExitError{Code: 1, Err: errors.New(result.ErrorDetail)}
	}

	if result.CopyFailed {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Artifact copy failed: "+result.CopyDetail))
		reportIssue(issue.CopyFailedId, nil)
	}

	fmt.Println(SuccessStyle.Render("BUILD SUCCESSFUL"))
	fmt.Println(SubtitleStyle.Render("Target: " + result.ArtifactPath))
	return nil
}
