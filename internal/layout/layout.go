package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// The placeholder file tree is embedded verbatim. Relative paths under tree/
// map one-to-one onto paths under the scaffolded root.
//
//go:embed all:tree
var treeFS embed.FS

const treeRoot = "tree"

// ManifestPath is the well-known location of the root workspace manifest,
// relative to the scaffolded root.
const ManifestPath = "package.json"

// manifestContent declares the workspace member globs and the standard task
// aliases for the monorepo root.
const manifestContent = `{
  "name": "in-midst-my-life",
  "version": "0.1.0",
  "private": true,
  "workspaces": [
    "apps/*",
    "packages/*"
  ],
  "scripts": {
    "dev": "turbo run dev",
    "build": "turbo run build",
    "test": "turbo run test",
    "lint": "turbo run lint",
    "typecheck": "turbo run typecheck"
  },
  "devDependencies": {
    "turbo": "^1.11.0",
    "typescript": "^5.3.3",
    "prettier": "^3.1.1",
    "eslint": "^8.56.0"
  }
}
`

// dirs lists every directory the scaffolder guarantees, in creation order.
// Parents appear before children; empty leaf directories (src/, test/, k8s/)
// are listed here because they carry no placeholder file.
var dirs = []string{
	"apps",
	"apps/web",
	"apps/web/src",
	"apps/api",
	"apps/api/src",
	"apps/orchestrator",
	"apps/orchestrator/src",
	"packages",
	"packages/schema",
	"packages/schema/src",
	"packages/schema/test",
	"packages/core",
	"packages/core/src",
	"packages/core/test",
	"packages/content-model",
	"packages/content-model/src",
	"packages/content-model/test",
	"packages/design-system",
	"packages/design-system/src",
	"packages/design-system/test",
	"infra",
	"infra/terraform",
	"infra/k8s",
	"docs",
	"docs/specs",
	".github",
	".github/workflows",
	"scripts",
}

var (
	loadOnce sync.Once
	files    map[string]string
	paths    []string
)

func load() {
	loadOnce.Do(func() {
		files = make(map[string]string)
		err := fs.WalkDir(treeFS, treeRoot, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := treeFS.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading embedded file %s: %w", p, err)
			}
			rel := p[len(treeRoot)+1:]
			files[rel] = string(data)
			return nil
		})
		if err != nil {
			// The tree is embedded at build time; a walk failure means a
			// broken binary, not a runtime condition.
			panic(fmt.Sprintf("walking embedded layout tree: %v", err))
		}
		paths = make([]string, 0, len(files))
		for p := range files {
			paths = append(paths, p)
		}
		sort.Strings(paths)
	})
}

// Dirs returns the ordered directory set, relative to the scaffolded root.
func Dirs() []string {
	out := make([]string, len(dirs))
	copy(out, dirs)
	return out
}

// FilePaths returns the file table keys in sorted order for deterministic
// reporting.
func FilePaths() []string {
	load()
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// FileContent returns the canonical content for a file table entry.
func FileContent(rel string) (string, bool) {
	load()
	c, ok := files[rel]
	return c, ok
}

// ManifestContent returns the canonical root workspace manifest content.
func ManifestContent() string {
	return manifestContent
}
