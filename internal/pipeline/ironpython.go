// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// compileDriver is handed to the toolchain via -c; it receives the target
// artifact path and the source list through sys.argv.
const compileDriver = "import sys, clr; clr.CompileModules(sys.argv[1], *sys.argv[2:])"

// IronPythonCompiler compiles plugin sources into a single .ghpy assembly
// by invoking the IronPython executable with a clr.CompileModules driver.
type IronPythonCompiler struct {
	// ExePath is the toolchain executable from the settings file.
	ExePath string
}

// NewIronPythonCompiler creates a compiler bound to the given executable.
func NewIronPythonCompiler(exePath string) *IronPythonCompiler {
	return &IronPythonCompiler{ExePath: exePath}
}

// Available reports whether the toolchain executable can be resolved.
func (c *IronPythonCompiler) Available() bool {
	if c.ExePath == "" {
		return false
	}
	_, err := exec.LookPath(c.ExePath)
	return err == nil
}

// Compile implements the Compiler interface. A toolchain that cannot be
// located yields ErrToolchainUnavailable; a toolchain that runs and exits
// non-zero yields a *CompileError carrying the captured diagnostics.
func (c *IronPythonCompiler) Compile(ctx context.Context, target string, sources []string) error {
	if c.ExePath == "" {
		return fmt.Errorf("%w: no toolchain path configured", ErrToolchainUnavailable)
	}

	exe, err := exec.LookPath(c.ExePath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolchainUnavailable, c.ExePath)
	}

	args := append([]string{"-c", compileDriver, target}, sources...)
	cmd := exec.CommandContext(ctx, exe, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CompileError{Output: output.String(), Err: err}
		}
		// The process never ran (e.g. permission denied, bad binary).
		return fmt.Errorf("%w: %v", ErrToolchainUnavailable, err)
	}

	return nil
}
