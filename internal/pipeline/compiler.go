// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
)

// ErrToolchainUnavailable signals that the compiler toolchain itself could
// not be located or started, as opposed to the toolchain running and
// rejecting the sources.
var ErrToolchainUnavailable = errors.New("compiler toolchain unavailable")

// CompileError reports a failure from inside the toolchain: it ran but the
// sources did not compile. Output carries the full diagnostic text.
type CompileError struct {
	Output string
	Err    error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("compilation failed: %v\n%s", e.Err, e.Output)
	}
	return fmt.Sprintf("compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compiler is the external compilation capability: given a target artifact
// path and an ordered collection of source files, it either produces the
// artifact at that path or fails with ErrToolchainUnavailable or a
// *CompileError. Implementations must never fail any other way.
type Compiler interface {
	Compile(ctx context.Context, target string, sources []string) error
}
