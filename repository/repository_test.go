package repository

import (
	"os/exec"
	"path/filepath"
	"testing"
)

func TestOpenRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed, skipping")
	}
	tmpDir := t.TempDir()
	if output, err := exec.Command("git", "init", tmpDir).CombinedOutput(); err != nil {
		t.Fatalf("git init failed: %v\n%s", err, output)
	}

	OpenRepository(tmpDir)
	if !Opened() {
		t.Fatalf("want repository opened in %s", tmpDir)
	}
	want, _ := filepath.EvalSymlinks(tmpDir)
	got, _ := filepath.EvalSymlinks(WorkDir())
	if got != want {
		t.Errorf("WorkDir: want %s, got %s", want, got)
	}
	if WorkDirOrCwd() != WorkDir() {
		t.Errorf("WorkDirOrCwd should return the work tree when opened")
	}
}

func TestOpenRepositoryOutside(t *testing.T) {
	OpenRepository(t.TempDir())
	if Opened() {
		t.Skip("temp dir is inside a git repository")
	}
	if WorkDirOrCwd() == "" {
		t.Errorf("WorkDirOrCwd should fall back to the current directory")
	}
}
