// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ghforge-cli/internal/collect"

	"github.com/charmbracelet/log"
)

// ArtifactDescriptor names one build: the artifact file name, where to
// collect sources, where to place the output, and an optional extra copy
// destination.
type ArtifactDescriptor struct {
	// Name is the artifact file name, including extension.
	Name string

	// SourceRoot is the directory to collect sources from. Relative paths
	// resolve against the Builder base directory, not the process CWD.
	SourceRoot string

	// ExportFolder receives the artifact. Created if absent. Relative paths
	// resolve against the Builder base directory.
	ExportFolder string

	// CopyTarget, when non-empty, is an additional directory the artifact
	// is copied to after a successful compile. Relative paths resolve
	// against the Builder base directory.
	CopyTarget string
}

// Builder runs the collect → compile → place → copy pipeline.
type Builder struct {
	// BaseDir anchors relative source and export paths so the pipeline is
	// independent of the invocation working directory.
	BaseDir string

	// Exclusions prunes source collection.
	Exclusions collect.ExclusionSet

	// Compiler is the injected external compilation capability.
	Compiler Compiler

	// Logger reports stage progress and failures. Required.
	Logger *log.Logger
}

// Build executes one pipeline run for the descriptor.
func (b *Builder) Build(ctx context.Context, desc ArtifactDescriptor) BuildResult {
	sourceRoot := b.resolve(desc.SourceRoot)
	exportFolder := b.resolve(desc.ExportFolder)
	target := filepath.Join(exportFolder, desc.Name)

	if err := os.MkdirAll(exportFolder, 0o755); err != nil {
		detail := fmt.Sprintf("failed to create export folder %s: %v", exportFolder, err)
		b.Logger.Error("build failed", "err", detail)
		return BuildResult{Failure: FailureSetup, ErrorDetail: detail}
	}

	sources := collect.Files(sourceRoot, b.Exclusions)
	b.Logger.Info("collected sources", "count", len(sources), "root", sourceRoot)

	if err := b.Compiler.Compile(ctx, target, sources); err != nil {
		kind := FailureCompile
		if errors.Is(err, ErrToolchainUnavailable) {
			kind = FailureToolchainUnavailable
			b.Logger.Error("build failed: toolchain unavailable", "err", err)
		} else {
			var ce *CompileError
			if errors.As(err, &ce) {
				b.Logger.Error("build failed: compilation error", "err", ce.Err)
				if ce.Output != "" {
					b.Logger.Error(ce.Output)
				}
			} else {
				b.Logger.Error("build failed", "err", err)
			}
		}
		return BuildResult{Failure: kind, ErrorDetail: err.Error()}
	}

	b.Logger.Info("build successful", "target", target)

	result := BuildResult{Success: true, ArtifactPath: target}

	// Copy stage is best-effort: a failure here is reported on the result
	// and logged as a warning but does not invalidate the successful
	// compile.
	if desc.CopyTarget != "" {
		copyTarget := b.resolve(desc.CopyTarget)
		if err := copyArtifact(target, copyTarget, desc.Name); err != nil {
			b.Logger.Warn("artifact copy failed", "target", copyTarget, "err", err)
			result.CopyFailed = true
			result.CopyDetail = err.Error()
		} else {
			b.Logger.Info("copy successful", "target", filepath.Join(copyTarget, desc.Name))
		}
	}

	return result
}

// resolve anchors a path against the builder base directory.
func (b *Builder) resolve(path string) string {
	if path == "" {
		return b.BaseDir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.BaseDir, path)
}

// copyArtifact copies the built artifact into dir, creating dir if needed
// and overwriting any existing file of the same name.
func copyArtifact(artifact, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create copy target %s: %w", dir, err)
	}

	// The default settings point the copy target at the export folder
	// itself; copying a file onto itself would truncate it mid-read.
	if filepath.Clean(filepath.Join(dir, name)) == filepath.Clean(artifact) {
		return nil
	}

	in, err := os.Open(artifact)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to create copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy artifact: %w", err)
	}
	return out.Close()
}
