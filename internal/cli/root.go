package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/in-midst-my-life/monogen/internal/branding"
	"github.com/in-midst-my-life/monogen/internal/config"
	"github.com/in-midst-my-life/monogen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	scaffoldForce  bool
	scaffoldDryRun bool
)

func init() {
	rootCmd.Flags().BoolVar(&scaffoldForce, "force", false, "Overwrite existing files instead of skipping them")
	rootCmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "Report actions without writing anything")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the directory tree and placeholder files
(READMEs, package manifests, a stub server entrypoint, a Terraform stub) for
the ` + branding.WorkspaceName() + ` workspace, plus the root package.json declaring
workspace members and task aliases. Existing files are skipped unless --force
is given, so re-running is always safe.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(scaffoldForce, scaffoldDryRun)
	},
}

func runScaffold(force, dryRun bool) error {
	root, err := scaffold.DetectRoot()
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Printf("  %s\n", branding.DisplayName())
	fmt.Println(rule)
	fmt.Printf("\nRepo root: %s\n", root)
	if dryRun {
		fmt.Println("Dry run: nothing will be written.")
	}
	fmt.Println()

	res, err := scaffold.Run(os.Stdout, scaffold.Options{
		Root:   root,
		Force:  force,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("  Scaffolding complete.")
	fmt.Println(rule)
	fmt.Printf("\n%d directories created, %d files written, %d skipped.\n",
		len(res.DirsCreated), len(res.FilesWritten), len(res.FilesSkipped))

	if len(res.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range res.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	fmt.Println("\nNext steps:")
	fmt.Println("  1. cd into the repo root")
	fmt.Println("  2. Run: pnpm install")
	fmt.Println("  3. Review QUICKSTART.md for the implementation guide")
	fmt.Println("  4. Begin Phase 1: implement the schema package")
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
