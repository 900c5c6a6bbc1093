package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryCreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "c")

	if err := EnsureDirectory(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}
}

func TestEnsureDirectoryExisting(t *testing.T) {
	dir := t.TempDir()

	if err := EnsureDirectory(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestEnsureDirectoryRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDirectory(file); err == nil {
		t.Error("Expected error when path is a regular file")
	}
}

func TestEnsureDirectoryEmptyPath(t *testing.T) {
	if err := EnsureDirectory(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestWorkingDirectory(t *testing.T) {
	if WorkingDirectory() == "" {
		t.Error("Expected a non-empty working directory")
	}
}

func TestHomeDownloadsDir(t *testing.T) {
	dir, err := HomeDownloadsDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}
	if filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected path ending in Downloads, got %s", dir)
	}
}
