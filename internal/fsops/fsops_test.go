package fsops

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestInspect_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if target.IsDir {
		t.Fatalf("expected file target")
	}
	if target.Size != 5 {
		t.Fatalf("size = %d, want 5", target.Size)
	}
}

func TestInspect_DirCountsFilesRecursively(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"one.txt", "a/two.txt", "a/b/three.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	target, err := Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if !target.IsDir {
		t.Fatalf("expected directory target")
	}
	if target.FileCount != 3 {
		t.Fatalf("file count = %d, want 3", target.FileCount)
	}
}

func TestInspect_RejectsSpecialFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix sockets unavailable on windows")
	}
	path := filepath.Join(t.TempDir(), "ctl.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	if _, err := Inspect(path); err == nil || !strings.Contains(err.Error(), "neither a regular file nor a directory") {
		t.Fatalf("expected special-file rejection, got %v", err)
	}
}

func TestInspect_Missing(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if _, err := Inspect(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDelete_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Delete(path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file survived delete")
	}
}

func TestDelete_DirRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "victim")
	if err := os.MkdirAll(filepath.Join(sub, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "nested", "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Delete(sub); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(sub); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("directory survived delete")
	}
}

func TestDelete_Missing(t *testing.T) {
	if err := Delete(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
