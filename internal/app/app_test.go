// SPDX-License-Identifier: MPL-2.0

package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ghforge-cli/internal/config"
	"ghforge-cli/internal/issue"
	"ghforge-cli/internal/pipeline"

	"github.com/charmbracelet/log"
)

// fakeCompiler writes the target file on success, mimicking the toolchain.
type fakeCompiler struct {
	calls   int
	sources []string
	err     error
}

func (f *fakeCompiler) Compile(_ context.Context, target string, sources []string) error {
	f.calls++
	f.sources = sources
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(target, []byte("module"), 0o644)
}

// testApp lays out a minimal project under a temp base dir: a plugin source
// folder and a shared package one level up, matching the default manifest
// shape but with local paths.
func testApp(t *testing.T, compiler pipeline.Compiler) *App {
	t.Helper()
	base := t.TempDir()

	if err := os.MkdirAll(filepath.Join(base, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "src", "plugin.py"), []byte("pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(base, "shared_pkg"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "shared_pkg", "core.py"), []byte("pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	manifest := Manifest{
		NamePrefix:          "tapir_gh",
		SourceFolder:        "src",
		SharedPackageSource: "shared_pkg",
		SharedPackageTarget: filepath.Join("src", "tapir_py"),
		ArtifactExt:         ".ghpy",
	}
	settings := &config.Settings{
		BuildOutputDir: filepath.Join(base, "out"),
	}
	return New(base, settings, manifest, compiler, log.New(io.Discard))
}

func TestRunBuildsAndCleansUp(t *testing.T) {
	fc := &fakeCompiler{}
	a := testApp(t, fc)

	result, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected successful build, got %+v", result)
	}

	if _, err := os.Stat(result.ArtifactPath); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(a.BaseDir, "src", "tapir_py")); !os.IsNotExist(err) {
		t.Error("staged package should be removed after the run")
	}

	// The staged shared package was part of the compiled source set.
	staged := filepath.Join(a.BaseDir, "src", "tapir_py", "core.py")
	found := false
	for _, s := range fc.sources {
		if s == staged {
			found = true
		}
	}
	if !found {
		t.Errorf("staged package sources not collected: %v", fc.sources)
	}
}

func TestRunDistinctArtifactNames(t *testing.T) {
	fc := &fakeCompiler{}
	a := testApp(t, fc)

	base := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	a.Now = func() time.Time { return base }
	first, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	a.Now = func() time.Time { return base.Add(time.Second) }
	second, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.ArtifactPath == second.ArtifactPath {
		t.Errorf("sequential runs must produce distinct artifact names, both %q", first.ArtifactPath)
	}
}

func TestRunSurfacesCopyFailure(t *testing.T) {
	fc := &fakeCompiler{}
	a := testApp(t, fc)
	// A regular file at the configured output directory blocks the copy.
	if err := os.WriteFile(a.Settings.BuildOutputDir, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Success {
		t.Fatalf("copy failure must not fail the build, got %+v", result)
	}
	if !result.CopyFailed || result.CopyDetail == "" {
		t.Errorf("copy failure not surfaced on the result: %+v", result)
	}
}

func TestRunCleansUpAfterFailedBuild(t *testing.T) {
	fc := &fakeCompiler{err: pipeline.ErrToolchainUnavailable}
	a := testApp(t, fc)

	result, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Success {
		t.Error("expected failed build")
	}
	if _, err := os.Stat(filepath.Join(a.BaseDir, "src", "tapir_py")); !os.IsNotExist(err) {
		t.Error("staged package must be removed even when the build fails")
	}
}

func TestRunMissingStagingSource(t *testing.T) {
	fc := &fakeCompiler{}
	a := testApp(t, fc)
	a.Manifest.SharedPackageSource = "does_not_exist"

	_, err := a.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing staging source")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("expected ActionableError, got %T", err)
	}
	if fc.calls != 0 {
		t.Error("no build must be attempted when staging fails")
	}
}

func TestArtifactNameFormat(t *testing.T) {
	a := testApp(t, &fakeCompiler{})
	a.Now = func() time.Time {
		return time.Date(2026, time.March, 14, 9, 5, 7, 0, time.UTC)
	}

	want := "tapir_gh_2026_Mar_14-09_05_07.ghpy"
	if got := a.ArtifactName(); got != want {
		t.Errorf("artifact name = %q, want %q", got, want)
	}
}
