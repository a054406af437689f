// SPDX-License-Identifier: MPL-2.0

// Package collect enumerates plugin source files for compilation.
//
// Collection is a read-only recursive traversal: files carrying the
// recognized source suffix are gathered unless their base name is excluded,
// and excluded directories are pruned from descent entirely (their contents
// are never visited).
package collect
