// SPDX-License-Identifier: MPL-2.0

// Package config handles the ghforge settings lifecycle using Viper.
//
// The settings document is a JSON file living beside the ghforge executable.
// On first run it is created with machine-specific defaults and the
// application refuses to proceed until the operator has reviewed it. On
// every later run it is loaded strictly: a present-but-malformed document is
// a fatal error, never a silent fallback to defaults. Settings are immutable
// for the remainder of a process run.
package config
