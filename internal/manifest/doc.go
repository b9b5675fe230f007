// Package manifest parses and validates the package.json files the scaffolder
// emits. Validation combines an embedded JSON Schema with semver checks on
// version fields and dependency ranges, so a diverged or hand-edited manifest
// is reported with property-level issues rather than a single parse error.
package manifest
