// SPDX-License-Identifier: MPL-2.0

// Package app wires the top-level build workflow: configuration readiness,
// shared-package staging, the artifact pipeline, and post-build cleanup.
//
// The workflow is a straight line with two early exits:
//
//	NotConfigured -> (create default settings) -> terminate
//	Ready -> Staging -> Building -> Cleanup -> Done
//
// A staging failure short-circuits Building and Cleanup (there is nothing
// staged to remove). Cleanup always runs after staging succeeded, whatever
// the build outcome.
package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"ghforge-cli/internal/collect"
	"ghforge-cli/internal/config"
	"ghforge-cli/internal/issue"
	"ghforge-cli/internal/pipeline"
	"ghforge-cli/internal/stage"

	"github.com/charmbracelet/log"
)

// exportFolder is the staging location for build artifacts, relative to the
// base directory. The configured build output directory is the copy target,
// not the export folder.
const exportFolder = "bin"

// timestampLayout uniquifies artifact names down to the second, so repeated
// builds never collide. Collisions across two processes started within the
// same second are accepted as negligible.
const timestampLayout = "2006_Jan_02-15_04_05"

// App is the build orchestrator.
type App struct {
	// BaseDir anchors every relative path: settings, manifest, sources,
	// staging and export locations. Normally the executable's directory.
	BaseDir string

	// Settings are the loaded, immutable machine settings.
	Settings *config.Settings

	// Manifest describes the plugin project layout.
	Manifest Manifest

	// Builder runs the artifact pipeline.
	Builder *pipeline.Builder

	// Logger reports workflow progress. Required.
	Logger *log.Logger

	// Now returns the current time; overridable in tests.
	Now func() time.Time
}

// New assembles an App from loaded settings and a project manifest. The
// compiler is injected so tests can replace the external toolchain.
func New(baseDir string, settings *config.Settings, manifest Manifest, compiler pipeline.Compiler, logger *log.Logger) *App {
	return &App{
		BaseDir:  baseDir,
		Settings: settings,
		Manifest: manifest,
		Builder: &pipeline.Builder{
			BaseDir:    baseDir,
			Exclusions: collect.NewExclusionSet(config.SettingsFileName, "__init__.py", "local", "bin"),
			Compiler:   compiler,
			Logger:     logger,
		},
		Logger: logger,
		Now:    time.Now,
	}
}

// Run executes one build workflow. The returned error covers pre-build
// failures (staging); build-stage failures are carried in the BuildResult.
func (a *App) Run(ctx context.Context) (pipeline.BuildResult, error) {
	pkgSource := a.resolve(a.Manifest.SharedPackageSource)
	pkgTarget := a.resolve(a.Manifest.SharedPackageTarget)

	if info, err := os.Stat(pkgSource); err != nil || !info.IsDir() {
		return pipeline.BuildResult{}, issue.NewErrorContext().
			WithOperation("stage shared package").
			WithResource(pkgSource).
			WithSuggestion("Verify the repository layout matches the project manifest").
			WithSuggestion("Check shared_package_source in " + ManifestFileName).
			Wrap(err).
			BuildError()
	}

	a.Logger.Info("staging shared package", "source", pkgSource, "target", pkgTarget)
	if err := stage.CopyTree(pkgSource, pkgTarget); err != nil {
		return pipeline.BuildResult{}, issue.WrapWithOperation(err, "stage shared package")
	}

	// Cleanup runs whatever the build outcome; only the staged copy is
	// removed, never the shared package itself.
	defer func() {
		if err := stage.Remove(pkgTarget); err != nil {
			a.Logger.Warn("failed to remove staged package", "target", pkgTarget, "err", err)
		}
	}()

	name := a.ArtifactName()
	a.Logger.Info("building plugin", "artifact", name)

	result := a.Builder.Build(ctx, pipeline.ArtifactDescriptor{
		Name:         name,
		SourceRoot:   a.Manifest.SourceFolder,
		ExportFolder: exportFolder,
		CopyTarget:   a.Settings.BuildOutputDir,
	})
	return result, nil
}

// ArtifactName generates a timestamp-uniqued artifact file name.
func (a *App) ArtifactName() string {
	now := a.Now
	if now == nil {
		now = time.Now
	}
	return a.Manifest.NamePrefix + "_" + now().Format(timestampLayout) + a.Manifest.ArtifactExt
}

// resolve anchors a path against the base directory.
func (a *App) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.BaseDir, path)
}
