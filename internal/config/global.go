// SPDX-License-Identifier: MPL-2.0

package config

// appDataDirOverride allows tests to override the application-data
// directory. This is necessary because os.UserHomeDir() doesn't reliably
// respect the HOME environment variable on all platforms (e.g., macOS in CI).
var appDataDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	appDataDirOverride = ""
}

// SetAppDataDirOverride sets a custom application-data directory path.
// Primarily intended for testing.
func SetAppDataDirOverride(dir string) {
	appDataDirOverride = dir
}
