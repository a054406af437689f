// SPDX-License-Identifier: MPL-2.0

package pipeline

// FailureKind distinguishes why a build did not produce an artifact.
type FailureKind int

const (
	// FailureNone means the build succeeded.
	FailureNone FailureKind = iota

	// FailureSetup means the pipeline could not prepare the export folder.
	FailureSetup

	// FailureToolchainUnavailable means the compiler toolchain could not be
	// located or started.
	FailureToolchainUnavailable

	// FailureCompile means the toolchain ran and rejected the sources.
	FailureCompile
)

// BuildResult is the outcome of one pipeline run. It is produced once per
// invocation and never persisted.
type BuildResult struct {
	// Success reports whether the compile stage produced the artifact.
	// A failed post-build copy does not clear it.
	Success bool

	// Failure classifies the failure when Success is false.
	Failure FailureKind

	// ArtifactPath is the path of the produced artifact when Success is true.
	ArtifactPath string

	// ErrorDetail carries the failure diagnostics when Success is false.
	ErrorDetail string

	// CopyFailed reports that the best-effort post-build copy failed. The
	// compile stage still succeeded and ArtifactPath is valid.
	CopyFailed bool

	// CopyDetail carries the copy failure diagnostics when CopyFailed is set.
	CopyDetail string
}
