// Package cli defines the Cobra command tree for the monogen CLI. The root
// command performs the scaffold itself; each other file in this package
// registers one subcommand (version, doctor, config) with the root command.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
