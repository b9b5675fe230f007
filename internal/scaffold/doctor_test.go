package scaffold

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckHealthyTree(t *testing.T) {
	root := t.TempDir()
	if _, err := Run(io.Discard, Options{Root: root}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var buf bytes.Buffer
	res, err := Check(&buf, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !res.Healthy() {
		t.Errorf("expected healthy tree, got %+v", res)
	}
	if !strings.Contains(buf.String(), "[ OK ] package.json validates") {
		t.Errorf("missing manifest validation line:\n%s", buf.String())
	}
}

func TestCheckEmptyRoot(t *testing.T) {
	root := t.TempDir()

	var buf bytes.Buffer
	res, err := Check(&buf, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if res.Healthy() {
		t.Fatal("empty root reported healthy")
	}
	if len(res.MissingDirs) == 0 || len(res.MissingFiles) == 0 {
		t.Errorf("expected missing dirs and files, got %+v", res)
	}
	if !strings.Contains(buf.String(), "[MISS] apps/") {
		t.Errorf("missing [MISS] marker:\n%s", buf.String())
	}
}

func TestCheckDivergedFile(t *testing.T) {
	root := t.TempDir()
	if _, err := Run(io.Discard, Options{Root: root}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Hand-edit a placeholder.
	edited := filepath.Join(root, "docs", "README.md")
	if err := os.WriteFile(edited, []byte("# edited\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	res, err := Check(&buf, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if res.Healthy() {
		t.Fatal("diverged tree reported healthy")
	}
	if !containsString(res.DivergedFiles, "docs/README.md") {
		t.Errorf("docs/README.md not reported diverged: %v", res.DivergedFiles)
	}
	if !strings.Contains(buf.String(), "[DIFF] docs/README.md") {
		t.Errorf("missing [DIFF] marker:\n%s", buf.String())
	}
}

func TestCheckInvalidManifest(t *testing.T) {
	root := t.TempDir()
	if _, err := Run(io.Discard, Options{Root: root}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Replace the root manifest with one missing required fields.
	bad := `{"name": "in-midst-my-life"}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	res, err := Check(&buf, root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(res.ManifestIssues) == 0 {
		t.Error("expected manifest issues for incomplete package.json")
	}
	if !containsString(res.DivergedFiles, "package.json") {
		t.Errorf("package.json not reported diverged: %v", res.DivergedFiles)
	}
}
