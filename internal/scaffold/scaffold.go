package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/in-midst-my-life/monogen/internal/layout"
	"github.com/in-midst-my-life/monogen/internal/manifest"
	"github.com/in-midst-my-life/monogen/internal/platform"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Options controls a scaffolding run.
type Options struct {
	Root   string // target root; all layout paths resolve under it
	Force  bool   // overwrite existing files with canonical content
	DryRun bool   // report without touching the filesystem
}

// Result holds the outcome of a scaffolding run. Paths are relative to Root
// and appear in the order they were processed.
type Result struct {
	Root         string
	DirsCreated  []string
	DirsExisting []string
	FilesWritten []string
	FilesSkipped []string
	Warnings     []string
}

// Run executes a single forward pass: ensure directories, write placeholder
// files, write the root manifest. It prints one line per item to w. A file
// that exists beforehand is skipped unless Force is set; parent directories
// of file table entries are created independently of the directory set.
func Run(w io.Writer, opts Options) (*Result, error) {
	res := &Result{Root: opts.Root}

	if err := ensureDirs(w, opts, res); err != nil {
		return nil, err
	}
	if err := writeFiles(w, opts, res); err != nil {
		return nil, err
	}
	if err := writeManifest(w, opts, res); err != nil {
		return nil, err
	}

	return res, nil
}

// ensureDirs creates every directory in the layout's directory set.
func ensureDirs(w io.Writer, opts Options, res *Result) error {
	for _, rel := range layout.Dirs() {
		path := filepath.Join(opts.Root, rel)

		if info, err := os.Stat(path); err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s exists but is not a directory", path)
			}
			fmt.Fprintf(w, "  [SKIP] %s/ already exists\n", rel)
			res.DirsExisting = append(res.DirsExisting, rel)
			continue
		}

		if opts.DryRun {
			fmt.Fprintf(w, "  [PLAN] Create %s/\n", rel)
			res.DirsCreated = append(res.DirsCreated, rel)
			continue
		}

		if err := os.MkdirAll(path, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", path, err)
		}
		// MkdirAll may not apply exact perms if parent dirs needed creation.
		if err := platform.Chmod(path, DirPerm); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
		fmt.Fprintf(w, "  [ OK ] Created %s/\n", rel)
		res.DirsCreated = append(res.DirsCreated, rel)
	}
	return nil
}

// writeFiles walks the file table in sorted order and applies the
// overwrite-or-skip policy to each entry.
func writeFiles(w io.Writer, opts Options, res *Result) error {
	for _, rel := range layout.FilePaths() {
		content, _ := layout.FileContent(rel)
		if err := ensureFile(w, opts, res, rel, content); err != nil {
			return err
		}
	}
	return nil
}

// writeManifest applies the same contract to the root workspace manifest and
// validates what it wrote, surfacing issues as warnings.
func writeManifest(w io.Writer, opts Options, res *Result) error {
	content := layout.ManifestContent()
	wrote, err := writeOne(w, opts, res, layout.ManifestPath, content)
	if err != nil {
		return err
	}
	if !wrote || opts.DryRun {
		return nil
	}

	valResult, valErr := manifest.Validate([]byte(content))
	if valErr != nil {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Could not validate root manifest: %v", valErr))
		return nil
	}
	for _, issue := range valResult.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		res.Warnings = append(res.Warnings, msg)
	}
	return nil
}

// ensureFile writes one file table entry under the overwrite-or-skip policy.
func ensureFile(w io.Writer, opts Options, res *Result, rel, content string) error {
	_, err := writeOne(w, opts, res, rel, content)
	return err
}

func writeOne(w io.Writer, opts Options, res *Result, rel, content string) (bool, error) {
	path := filepath.Join(opts.Root, rel)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		fmt.Fprintf(w, "  [SKIP] %s (exists)\n", rel)
		res.FilesSkipped = append(res.FilesSkipped, rel)
		return false, nil
	}

	if opts.DryRun {
		fmt.Fprintf(w, "  [PLAN] Write %s\n", rel)
		res.FilesWritten = append(res.FilesWritten, rel)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return false, fmt.Errorf("creating parent directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), FilePerm); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Wrote %s\n", rel)
	res.FilesWritten = append(res.FilesWritten, rel)
	return true, nil
}
