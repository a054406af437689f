// SPDX-License-Identifier: MPL-2.0

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ghforge-cli/internal/issue"
)

func TestEnsureReadyFirstRunCreatesDefaults(t *testing.T) {
	base := t.TempDir()
	SetAppDataDirOverride(filepath.Join(base, "appdata"))
	defer Reset()

	ready, settings, err := EnsureReady(base)
	if err != nil {
		t.Fatalf("EnsureReady: %v", err)
	}
	if ready {
		t.Error("expected not ready on first run")
	}
	if settings == nil || *settings != (Settings{}) {
		t.Errorf("expected empty settings on first run, got %+v", settings)
	}

	// The document on disk must contain all four recognized keys.
	data, err := os.ReadFile(SettingsPath(base))
	if err != nil {
		t.Fatalf("settings file not created: %v", err)
	}
	var doc map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("settings file is not valid JSON: %v", err)
	}
	for _, key := range []string{"toolchain_path", "host_app_path", "plugin_install_dir", "build_output_dir"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("default settings missing key %q", key)
		}
	}
	if got := doc["build_output_dir"]; got != filepath.Join(base, "bin") {
		t.Errorf("expected build_output_dir %q, got %q", filepath.Join(base, "bin"), got)
	}
	if !strings.Contains(doc["plugin_install_dir"], "Grasshopper") {
		t.Errorf("expected plugin_install_dir under Grasshopper, got %q", doc["plugin_install_dir"])
	}
}

func TestEnsureReadySecondRunLoadsWrittenValues(t *testing.T) {
	base := t.TempDir()
	SetAppDataDirOverride(filepath.Join(base, "appdata"))
	defer Reset()

	if ready, _, err := EnsureReady(base); err != nil || ready {
		t.Fatalf("first run: ready=%v err=%v", ready, err)
	}

	defaults, err := DefaultSettings(base)
	if err != nil {
		t.Fatalf("DefaultSettings: %v", err)
	}

	ready, settings, err := EnsureReady(base)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !ready {
		t.Error("expected ready on second run")
	}
	if *settings != *defaults {
		t.Errorf("loaded settings differ from written defaults:\n got %+v\nwant %+v", settings, defaults)
	}
}

func TestEnsureReadyMalformedDocumentIsFatal(t *testing.T) {
	base := t.TempDir()
	path := SettingsPath(base)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	ready, _, err := EnsureReady(base)
	if err == nil {
		t.Fatal("expected error for malformed settings")
	}
	if ready {
		t.Error("expected not ready on malformed settings")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("expected ActionableError, got %T", err)
	}
}

func TestEnsureReadyMissingKeyIsFatal(t *testing.T) {
	base := t.TempDir()
	doc := `{"toolchain_path": "/usr/bin/ipy", "host_app_path": "/opt/rhino"}`
	if err := os.WriteFile(SettingsPath(base), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := EnsureReady(base); err == nil {
		t.Fatal("expected error when recognized keys are missing")
	}
}

func TestEnsureReadyWrongValueTypeIsFatal(t *testing.T) {
	base := t.TempDir()
	doc := `{"toolchain_path": 7, "host_app_path": "x", "plugin_install_dir": "y", "build_output_dir": "z"}`
	if err := os.WriteFile(SettingsPath(base), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := EnsureReady(base); err == nil {
		t.Fatal("expected error for non-string settings value")
	}
}

func TestLoadRoundTripsHandWrittenDocument(t *testing.T) {
	base := t.TempDir()
	doc := `{
  "toolchain_path": "/usr/local/bin/ipy",
  "host_app_path": "/opt/rhino/rhino",
  "plugin_install_dir": "/home/u/.local/share/Grasshopper/Libraries",
  "build_output_dir": "/tmp/out"
}`
	if err := os.WriteFile(SettingsPath(base), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(SettingsPath(base))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.ToolchainPath != "/usr/local/bin/ipy" {
		t.Errorf("unexpected toolchain path %q", settings.ToolchainPath)
	}
	if settings.BuildOutputDir != "/tmp/out" {
		t.Errorf("unexpected build output dir %q", settings.BuildOutputDir)
	}
}
