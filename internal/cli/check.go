package cli

import (
	"fmt"

	"github.com/iconport-labs/iconport/internal/build"
	"github.com/iconport-labs/iconport/internal/config"
	"github.com/iconport-labs/iconport/internal/npm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a newer upstream version is available",
	Long: `Fetches the latest published version from the registry and compares it to
the processed-version marker. Nothing is downloaded or written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		client := npm.New(cfg.Registry)

		version, err := client.ResolveLatest(cfg.Package)
		if err != nil {
			return fmt.Errorf("resolving package version: %w", err)
		}

		recorded, err := build.ReadMarker(cfg.MarkerFile)
		if err != nil {
			return err
		}

		newer, err := build.IsNewer(version.Version, recorded)
		if err != nil {
			return err
		}

		switch {
		case recorded == "":
			fmt.Printf("No version imported yet; latest %s is %s\n", cfg.Package, version.Version)
		case newer:
			fmt.Printf("Update available: %s -> %s\n", recorded, version.Version)
		default:
			fmt.Printf("Up to date (%s)\n", recorded)
		}
		return nil
	},
}
