// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestCopyTreeCopiesRecursively(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "staged")
	write(t, filepath.Join(src, "a.py"), "a")
	write(t, filepath.Join(src, "sub", "b.py"), "b")

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if got := read(t, filepath.Join(dst, "a.py")); got != "a" {
		t.Errorf("a.py content = %q", got)
	}
	if got := read(t, filepath.Join(dst, "sub", "b.py")); got != "b" {
		t.Errorf("sub/b.py content = %q", got)
	}
}

func TestCopyTreeOverwritesExisting(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, filepath.Join(src, "a.py"), "new")
	write(t, filepath.Join(dst, "a.py"), "old")
	write(t, filepath.Join(dst, "keep.txt"), "untouched")

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if got := read(t, filepath.Join(dst, "a.py")); got != "new" {
		t.Errorf("expected overwrite, got %q", got)
	}
	if got := read(t, filepath.Join(dst, "keep.txt")); got != "untouched" {
		t.Errorf("unrelated file was modified: %q", got)
	}
}

func TestCopyTreeMissingSource(t *testing.T) {
	if err := CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir()); err == nil {
		t.Fatal("expected error for missing staging source")
	}
}

func TestCopyTreeLeavesSourceIntact(t *testing.T) {
	src := t.TempDir()
	write(t, filepath.Join(src, "a.py"), "a")

	if err := CopyTree(src, filepath.Join(t.TempDir(), "staged")); err != nil {
		t.Fatal(err)
	}
	if got := read(t, filepath.Join(src, "a.py")); got != "a" {
		t.Errorf("source was modified: %q", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "staged")
	write(t, filepath.Join(dst, "a.py"), "a")

	if err := Remove(dst); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("staged tree still present after Remove")
	}
	if err := Remove(dst); err != nil {
		t.Errorf("second Remove should be a no-op, got %v", err)
	}
}
