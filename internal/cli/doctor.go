package cli

import (
	"fmt"
	"os"

	"github.com/in-midst-my-life/monogen/internal/branding"
	"github.com/in-midst-my-life/monogen/internal/manifest"
	"github.com/in-midst-my-life/monogen/internal/scaffold"
	"github.com/spf13/cobra"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a scaffolded tree",
	Long: `Compare the target root against the canonical layout: missing directories,
missing files, and files whose content diverges from the placeholder table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkManifest != "" {
			return runManifestCheck(checkManifest)
		}

		root, err := scaffold.DetectRoot()
		if err != nil {
			return err
		}
		fmt.Printf("Checking %s\n\n", root)

		res, err := scaffold.Check(os.Stdout, root)
		if err != nil {
			return err
		}

		fmt.Println()
		if res.Healthy() {
			fmt.Println("Tree matches the canonical layout.")
			return nil
		}
		if len(res.MissingDirs) > 0 || len(res.MissingFiles) > 0 {
			fmt.Printf("Run '%s' to create missing entries.\n", branding.CLIName())
		}
		if len(res.DivergedFiles) > 0 {
			fmt.Printf("Run '%s --force' to restore canonical content (overwrites local edits).\n", branding.CLIName())
		}
		return nil
	},
}

func runManifestCheck(path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Printf("  [ OK ] %s validates\n", path)
		return nil
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Printf("  [FAIL] %s\n", msg)
	}
	return fmt.Errorf("%s failed validation", path)
}
