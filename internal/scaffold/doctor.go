package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/in-midst-my-life/monogen/internal/layout"
	"github.com/in-midst-my-life/monogen/internal/manifest"
)

// CheckResult summarizes a health check of a scaffolded tree.
type CheckResult struct {
	MissingDirs    []string
	MissingFiles   []string
	DivergedFiles  []string
	ManifestIssues []manifest.ValidationIssue
}

// Healthy reports whether the tree matches the canonical layout.
func (r *CheckResult) Healthy() bool {
	return len(r.MissingDirs) == 0 && len(r.MissingFiles) == 0 &&
		len(r.DivergedFiles) == 0 && len(r.ManifestIssues) == 0
}

// Check compares the tree under root against the canonical layout. Missing
// directories and files are reported, and present files are compared byte-wise
// against the table so hand-edited placeholders show up as diverged rather
// than healthy. The on-disk root manifest, if present, is schema-validated.
func Check(w io.Writer, root string) (*CheckResult, error) {
	res := &CheckResult{}

	fmt.Fprintln(w, "Directory check:")
	for _, rel := range layout.Dirs() {
		info, err := os.Stat(filepath.Join(root, rel))
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(w, "  [MISS] %s/\n", rel)
			res.MissingDirs = append(res.MissingDirs, rel)
		case err != nil:
			return nil, fmt.Errorf("checking %s: %w", rel, err)
		case !info.IsDir():
			fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", rel)
			res.MissingDirs = append(res.MissingDirs, rel)
		default:
			fmt.Fprintf(w, "  [ OK ] %s/\n", rel)
		}
	}

	fmt.Fprintln(w, "\nFile check:")
	for _, rel := range layout.FilePaths() {
		want, _ := layout.FileContent(rel)
		checkFile(w, root, rel, want, res)
	}
	checkFile(w, root, layout.ManifestPath, layout.ManifestContent(), res)

	manifestPath := filepath.Join(root, layout.ManifestPath)
	if _, err := os.Stat(manifestPath); err == nil {
		fmt.Fprintln(w, "\nManifest check:")
		valResult, valErr := manifest.ValidateFile(manifestPath)
		if valErr != nil {
			return nil, fmt.Errorf("validating root manifest: %w", valErr)
		}
		if valResult.Valid {
			fmt.Fprintf(w, "  [ OK ] %s validates\n", layout.ManifestPath)
		}
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(w, "  [WARN] %s\n", msg)
			res.ManifestIssues = append(res.ManifestIssues, issue)
		}
	}

	return res, nil
}

func checkFile(w io.Writer, root, rel, want string, res *CheckResult) {
	data, err := os.ReadFile(filepath.Join(root, rel))
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s\n", rel)
		res.MissingFiles = append(res.MissingFiles, rel)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s: %v\n", rel, err)
		res.DivergedFiles = append(res.DivergedFiles, rel)
		return
	}
	if string(data) != want {
		fmt.Fprintf(w, "  [DIFF] %s differs from canonical content\n", rel)
		res.DivergedFiles = append(res.DivergedFiles, rel)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", rel)
}
