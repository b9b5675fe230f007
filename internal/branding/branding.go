// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary, so a rename never touches the code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	WorkspaceName string `yaml:"workspace_name"`
	GoModule      string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "monogen",
			DisplayName:   "Monorepo Generator",
			Description:   "Scaffolds the in-midst-my-life monorepo layout",
			HomeDir:       ".monogen",
			EnvPrefix:     "MONOGEN",
			WorkspaceName: "in-midst-my-life",
			GoModule:      "github.com/in-midst-my-life/monogen",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "monogen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".monogen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MONOGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// WorkspaceName returns the name of the monorepo this tool scaffolds.
func WorkspaceName() string { load(); return defaults.WorkspaceName }

// GoModule returns the Go module path. Used by packaging scripts — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "MONOGEN_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
