// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for ghforge.
//
// Two layers live here: ActionableError, a structured error carrying the
// failed operation, the resource involved and fix suggestions, and a
// registry of known Issue values with markdown help that can be rendered
// to the terminal in verbose mode.
package issue
