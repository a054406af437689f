// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the application name.
	AppName = "ghforge"
	// SettingsFileName is the name of the settings document beside the executable.
	SettingsFileName = "ghforge_settings.json"
)

// Settings holds the four recognized configuration values. All values are
// plain strings; path validity is only checked at the point of use.
type Settings struct {
	// ToolchainPath is the full path to the compiler toolchain executable.
	ToolchainPath string `json:"toolchain_path" mapstructure:"toolchain_path"`

	// HostAppPath is the full path to the host design application executable.
	HostAppPath string `json:"host_app_path" mapstructure:"host_app_path"`

	// PluginInstallDir is where built plugin artifacts get installed.
	PluginInstallDir string `json:"plugin_install_dir" mapstructure:"plugin_install_dir"`

	// BuildOutputDir is the default export directory for build artifacts.
	BuildOutputDir string `json:"build_output_dir" mapstructure:"build_output_dir"`
}

// DefaultSettings computes the default settings for this machine. The
// plugin install directory is derived from the platform application-data
// location; the build output directory defaults to <baseDir>/bin.
//
// This is the explicit defaults factory: it is invoked at bootstrap time
// and never stored in a package-level mutable.
func DefaultSettings(baseDir string) (*Settings, error) {
	dataDir, err := appDataDir()
	if err != nil {
		return nil, err
	}

	return &Settings{
		ToolchainPath:    defaultToolchainPath(),
		HostAppPath:      defaultHostAppPath(),
		PluginInstallDir: filepath.Join(dataDir, "Grasshopper", "Libraries"),
		BuildOutputDir:   filepath.Join(baseDir, "bin"),
	}, nil
}

// appDataDir returns the per-user application data directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_DATA_HOME
// (defaulting to ~/.local/share).
func appDataDir() (string, error) {
	if appDataDirOverride != "" {
		return appDataDirOverride, nil
	}

	switch runtime.GOOS {
	case "windows":
		dataDir := os.Getenv("APPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return dataDir, nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default: // Linux and others
		if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
			return dataDir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// defaultToolchainPath returns a placeholder toolchain location for the
// freshly created settings file. The operator is expected to review it.
func defaultToolchainPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\IronPython 2.7\ipy.exe`
	}
	return "/usr/local/bin/ipy"
}

// defaultHostAppPath returns a placeholder host application location.
func defaultHostAppPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\Rhino 7\System\Rhino.exe`
	}
	return "/Applications/Rhino 7.app/Contents/MacOS/Rhinoceros"
}
