package manifest

// PackageManifest represents a package.json emitted by the scaffolder.
// The root workspace manifest and the per-package manifests share this shape;
// the root is distinguished by a non-empty Workspaces list.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private,omitempty"`
	Workspaces      []string          `json:"workspaces,omitempty"`
	Main            string            `json:"main,omitempty"`
	Types           string            `json:"types,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// IsWorkspaceRoot reports whether the manifest declares workspace members.
func (m *PackageManifest) IsWorkspaceRoot() bool {
	return len(m.Workspaces) > 0
}
