package scaffold

import (
	"path/filepath"
	"testing"
)

func TestRootFromInvocation(t *testing.T) {
	t.Run("binary at repo root", func(t *testing.T) {
		got := rootFromInvocation(filepath.Join("/home/user/repo", "monogen"))
		if got != "/home/user/repo" {
			t.Errorf("root = %q, want %q", got, "/home/user/repo")
		}
	})

	t.Run("binary under scripts", func(t *testing.T) {
		got := rootFromInvocation(filepath.Join("/home/user/repo/scripts", "monogen"))
		if got != "/home/user/repo" {
			t.Errorf("root = %q, want %q", got, "/home/user/repo")
		}
	})

	t.Run("scripts elsewhere in path does not trigger", func(t *testing.T) {
		got := rootFromInvocation(filepath.Join("/home/user/scripts/repo", "monogen"))
		if got != "/home/user/scripts/repo" {
			t.Errorf("root = %q, want %q", got, "/home/user/scripts/repo")
		}
	})
}

func TestDetectRootEnvOverride(t *testing.T) {
	t.Setenv("MONOGEN_ROOT", "/tmp/elsewhere")

	got, err := DetectRoot()
	if err != nil {
		t.Fatalf("DetectRoot() error: %v", err)
	}
	if got != "/tmp/elsewhere" {
		t.Errorf("root = %q, want %q", got, "/tmp/elsewhere")
	}
}
