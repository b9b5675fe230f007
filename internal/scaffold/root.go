package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/in-midst-my-life/monogen/internal/branding"
	"github.com/in-midst-my-life/monogen/internal/config"
)

// DetectRoot resolves the target root directory.
// It checks the MONOGEN_ROOT environment variable first, then the "root"
// config key, then falls back to the invocation-path heuristic.
func DetectRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("ROOT")); v != "" {
		return v, nil
	}
	if v := config.Get("root"); v != "" {
		return v, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return rootFromInvocation(exe), nil
}

// rootFromInvocation maps the binary's location to the repo root: its parent
// directory, or the grandparent when the binary sits in a scripts/ directory.
// Best-effort: relocating the binary moves the guessed root with it.
func rootFromInvocation(exePath string) string {
	dir := filepath.Dir(exePath)
	if filepath.Base(dir) == "scripts" {
		return filepath.Dir(dir)
	}
	return dir
}
