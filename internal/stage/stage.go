// SPDX-License-Identifier: MPL-2.0

// Package stage copies the shared source package into a plugin build tree
// before compilation and removes it afterwards.
package stage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyTree recursively copies the directory tree at src into dst, creating
// dst if needed and overwriting files that already exist. The source tree is
// never modified. os.CopyFS is not used because it refuses to overwrite
// existing files and staging must be repeatable.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("staging source unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("staging source %s is not a directory", src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// Remove deletes a previously staged tree. Removing a path that no longer
// exists is not an error.
func Remove(dst string) error {
	return os.RemoveAll(dst)
}

// copyFile copies a single regular file, truncating any existing target.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
