package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const rootManifestJSON = `{
  "name": "in-midst-my-life",
  "version": "0.1.0",
  "private": true,
  "workspaces": ["apps/*", "packages/*"],
  "scripts": {
    "dev": "turbo run dev",
    "build": "turbo run build"
  },
  "devDependencies": {
    "turbo": "^1.11.0"
  }
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(rootManifestJSON))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Name != "in-midst-my-life" {
		t.Errorf("Name = %q, want %q", m.Name, "in-midst-my-life")
	}
	if m.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", m.Version, "0.1.0")
	}
	if !m.Private {
		t.Error("Private = false, want true")
	}
	if len(m.Workspaces) != 2 || m.Workspaces[0] != "apps/*" {
		t.Errorf("Workspaces = %v, want [apps/* packages/*]", m.Workspaces)
	}
	if m.Scripts["dev"] != "turbo run dev" {
		t.Errorf("Scripts[dev] = %q, want %q", m.Scripts["dev"], "turbo run dev")
	}
	if m.DevDependencies["turbo"] != "^1.11.0" {
		t.Errorf("DevDependencies[turbo] = %q, want %q", m.DevDependencies["turbo"], "^1.11.0")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(rootManifestJSON), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if m.Name != "in-midst-my-life" {
		t.Errorf("Name = %q, want %q", m.Name, "in-midst-my-life")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIsWorkspaceRoot(t *testing.T) {
	t.Run("root manifest", func(t *testing.T) {
		m := &PackageManifest{Workspaces: []string{"apps/*"}}
		if !m.IsWorkspaceRoot() {
			t.Error("IsWorkspaceRoot() = false, want true")
		}
	})

	t.Run("member manifest", func(t *testing.T) {
		m := &PackageManifest{Name: "@in-midst-my-life/web"}
		if m.IsWorkspaceRoot() {
			t.Error("IsWorkspaceRoot() = true, want false")
		}
	})
}
