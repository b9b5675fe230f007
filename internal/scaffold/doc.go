// Package scaffold materializes the layout tables onto the filesystem. It
// resolves the target root, creates the directory set, and writes placeholder
// files and the root workspace manifest under an overwrite-or-skip policy.
// Re-running is safe: existing files are skipped unless force is requested.
package scaffold
