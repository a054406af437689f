// SPDX-License-Identifier: MPL-2.0

package collect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SourceSuffix is the file suffix recognized as compilable plugin source.
const SourceSuffix = ".py"

// ExclusionSet holds literal names skipped during collection. File matching
// compares exact base names; directory matching lowercases the base name
// first, so "Local" and "local" both prune descent.
type ExclusionSet struct {
	names map[string]struct{}
}

// NewExclusionSet builds an immutable exclusion set from literal names.
func NewExclusionSet(names ...string) ExclusionSet {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return ExclusionSet{names: set}
}

// ExcludesFile reports whether a file with the given base name is excluded.
func (s ExclusionSet) ExcludesFile(name string) bool {
	_, ok := s.names[name]
	return ok
}

// ExcludesDir reports whether a directory with the given base name is
// excluded. The comparison is case-insensitive.
func (s ExclusionSet) ExcludesDir(name string) bool {
	_, ok := s.names[strings.ToLower(name)]
	return ok
}

// Files recursively collects source files under root, applying the exclusion
// rules. A root that does not exist or is not a directory yields an empty
// slice, not an error. Order follows directory listing order and is not
// guaranteed sorted; callers must treat the result as a set.
func Files(root string, excl ExclusionSet) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, matching the read-only
			// best-effort traversal contract.
			return nil
		}
		if d.IsDir() {
			if path != root && excl.ExcludesDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), SourceSuffix) {
			return nil
		}
		if excl.ExcludesFile(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files
}
