// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ghforge-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

//go:embed settings_schema.cue
var settingsSchema string

// SettingsPath returns the settings document path for the given base
// directory (normally the directory containing the ghforge executable).
func SettingsPath(baseDir string) string {
	return filepath.Join(baseDir, SettingsFileName)
}

// EnsureReady implements the configuration bootstrap lifecycle.
//
// If the settings document is absent it is created with machine-specific
// defaults and (false, empty settings, nil) is returned: the operator must
// review the new file and relaunch before any build or launch action.
// If present, it is loaded strictly; a document that fails to parse or
// validate yields a fatal error, never a fallback to defaults.
func EnsureReady(baseDir string) (bool, *Settings, error) {
	path := SettingsPath(baseDir)

	if !fileExists(path) {
		defaults, err := DefaultSettings(baseDir)
		if err != nil {
			return false, nil, issue.WrapWithOperation(err, "compute default settings")
		}
		if err := writeSettings(path, defaults); err != nil {
			return false, nil, err
		}
		return false, &Settings{}, nil
	}

	settings, err := Load(path)
	if err != nil {
		return false, nil, err
	}
	return true, settings, nil
}

// Load reads and strictly validates an existing settings document.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read settings").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	v := viper.New()
	if err := mergeValidated(v, path, data); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse settings").
			WithResource(path).
			WithSuggestion("Ensure the file is valid JSON with string values for all four keys").
			WithSuggestion("Delete the file and relaunch to regenerate defaults").
			Wrap(err).
			BuildError()
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &settings, nil
}

// mergeValidated parses the settings document, validates it against the
// embedded #Settings schema, and merges the result into Viper. JSON is a
// subset of CUE, so the document compiles directly.
func mergeValidated(v *viper.Viper, path string, data []byte) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(settingsSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile settings schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return userValue.Err()
	}

	// Unify with the schema; Concrete(true) requires every recognized key
	// to be present with a concrete string value.
	schema := schemaValue.LookupPath(cue.ParsePath("#Settings"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}

	var settingsMap map[string]any
	if err := unified.Decode(&settingsMap); err != nil {
		return err
	}

	return v.MergeConfigMap(settingsMap)
}

// writeSettings persists a settings document as indented JSON.
func writeSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("write settings").
			WithResource(path).
			WithSuggestion("Check that the directory is writable").
			Wrap(err).
			BuildError()
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
