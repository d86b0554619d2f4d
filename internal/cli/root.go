package cli

import (
	"fmt"
	"os"

	"github.com/iconport-labs/iconport/internal/branding"
	"github.com/iconport-labs/iconport/internal/build"
	"github.com/iconport-labs/iconport/internal/config"
	"github.com/iconport-labs/iconport/internal/npm"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootForce       bool
	rootTag         string
	rootLanguageIDs bool
	rootKeepScratch bool
)

func init() {
	rootCmd.Flags().BoolVar(&rootForce, "force", false, "Re-import even if the marker already records the latest version")
	rootCmd.Flags().StringVar(&rootTag, "tag", "", "Import a specific published version instead of latest")
	rootCmd.Flags().BoolVar(&rootLanguageIDs, "include-language-ids", false, "Fold languageIds identifiers into the icon-key table")
	rootCmd.Flags().BoolVar(&rootKeepScratch, "keep-scratch", false, "Keep the scratch directory for debugging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` downloads the upstream icon package from the npm registry,
converts its bundled manifest into a Zed icon theme, and writes the icon assets,
theme JSON, and processed-version marker into the current project.

  ` + branding.CLIName() + `                 # import the latest published version
  ` + branding.CLIName() + ` --tag 5.12.0    # import a pinned version
  ` + branding.CLIName() + ` check           # report whether an import would do work`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		client := npm.New(cfg.Registry)

		result, err := build.Run(cfg, client, build.Options{
			Tag:                rootTag,
			Force:              rootForce,
			IncludeLanguageIDs: rootLanguageIDs,
			KeepScratch:        rootKeepScratch,
		})
		if err != nil {
			return err
		}

		if !result.Skipped {
			fmt.Printf("Imported %s %s\n", cfg.Package, result.Version)
		}
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags. Failures
// are logged to stderr; the caller turns a non-nil return into exit status 1.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
