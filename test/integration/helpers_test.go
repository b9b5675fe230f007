//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	RootDir string // MONOGEN_ROOT — the scaffold target
	HomeDir string // isolated HOME so ~/.monogen never leaks in
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so all monogen operations are sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		RootDir: t.TempDir(),
		HomeDir: t.TempDir(),
	}

	t.Setenv("MONOGEN_ROOT", env.RootDir)
	t.Setenv("HOME", env.HomeDir)

	return env
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s exists but is not a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFileString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
