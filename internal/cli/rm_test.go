package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRm_WithYesDeletesFile(t *testing.T) {
	reg := testRegistry(t)
	path := filepath.Join(t.TempDir(), "junk.txt")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCmd(t, reg, "rm", "--yes", path)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	env := decodeEnvelope(t, out)
	if env["ok"] != true {
		t.Fatalf("expected ok envelope, got %v", env)
	}
	if dataMap(t, env)["deleted"] != true {
		t.Fatalf("expected deleted=true, got %v", env)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file survived rm")
	}
}

func TestRm_DirectoryWithYes(t *testing.T) {
	reg := testRegistry(t)
	dir := filepath.Join(t.TempDir(), "victim")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCmd(t, reg, "rm", "--yes", dir)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("directory survived rm")
	}
}

func TestRm_RefusesWithoutYesOffTerminal(t *testing.T) {
	reg := testRegistry(t)
	path := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(path, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCmd(t, reg, "rm", path)
	if err == nil {
		t.Fatalf("expected error without --yes off a terminal")
	}
	env := decodeEnvelope(t, out)
	if env["ok"] != false {
		t.Fatalf("expected failure envelope, got %v", env)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("file should be untouched: %v", statErr)
	}
}

func TestRm_MissingPath(t *testing.T) {
	reg := testRegistry(t)
	out, err := runCmd(t, reg, "rm", "--yes", filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatalf("expected error for missing path")
	}
	env := decodeEnvelope(t, out)
	errMap, _ := env["error"].(map[string]any)
	if errMap == nil || errMap["code"] != "inspect_failed" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}
