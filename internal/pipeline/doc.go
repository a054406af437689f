// SPDX-License-Identifier: MPL-2.0

// Package pipeline drives a single linear build: collect plugin sources,
// compile them into one artifact through an injected Compiler, and
// optionally copy the artifact to an install location.
//
// There are no retries and no incremental state; every invocation collects
// and compiles from scratch. Compilation failure fails the build, while a
// post-build copy failure is deliberately reported as a warning only (the
// artifact already exists and the copy is a best-effort annex).
package pipeline
