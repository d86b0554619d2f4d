// Package build orchestrates one import run: resolve the upstream version,
// download and extract the package tarball into a scratch directory, convert
// the bundled manifest, publish the icon assets and theme JSON, and record the
// processed version. The pipeline is strictly sequential; the first error
// aborts the run.
package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iconport-labs/iconport/internal/archive"
	"github.com/iconport-labs/iconport/internal/assets"
	"github.com/iconport-labs/iconport/internal/config"
	"github.com/iconport-labs/iconport/internal/convert"
	"github.com/iconport-labs/iconport/internal/icontheme"
	"github.com/iconport-labs/iconport/internal/npm"
	"github.com/iconport-labs/iconport/internal/vsicons"
)

// Fixed locations inside the extracted npm tarball. npm roots every package
// under "package/".
const (
	manifestRelPath = "package/dist/material-icons.json"
	iconsRelPath    = "package/icons"
)

// Options tune one import run.
type Options struct {
	// Tag pins a specific published version; empty means latest.
	Tag string
	// Force imports even when the marker already records this version.
	Force bool
	// IncludeLanguageIDs folds languageIds into the icon-key table.
	IncludeLanguageIDs bool
	// KeepScratch leaves the scratch directory behind for debugging.
	KeepScratch bool
}

// Result reports what a run did.
type Result struct {
	Version string
	Skipped bool
}

// Run executes the full import pipeline. The scratch directory is removed on
// every exit path unless Options.KeepScratch is set.
func Run(cfg *config.Settings, client *npm.Client, opts Options) (*Result, error) {
	var version *npm.Version
	var err error
	if opts.Tag != "" {
		fmt.Fprintf(os.Stderr, "Resolving %s@%s...\n", cfg.Package, opts.Tag)
		version, err = client.ResolveVersion(cfg.Package, opts.Tag)
	} else {
		fmt.Fprintf(os.Stderr, "Resolving latest %s...\n", cfg.Package)
		version, err = client.ResolveLatest(cfg.Package)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving package version: %w", err)
	}

	recorded, err := ReadMarker(cfg.MarkerFile)
	if err != nil {
		return nil, err
	}
	if !opts.Force {
		newer, err := IsNewer(version.Version, recorded)
		if err != nil {
			return nil, err
		}
		if !newer {
			fmt.Fprintf(os.Stderr, "Already up to date (%s)\n", recorded)
			return &Result{Version: recorded, Skipped: true}, nil
		}
	}

	scratch, err := os.MkdirTemp("", "iconport-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	if !opts.KeepScratch {
		defer os.RemoveAll(scratch)
	}

	fmt.Fprintf(os.Stderr, "Downloading %s %s...\n", cfg.Package, version.Version)
	tarballPath, err := client.DownloadTarball(version, scratch)
	if err != nil {
		return nil, fmt.Errorf("downloading tarball: %w", err)
	}
	if err := npm.VerifyShasum(version, tarballPath); err != nil {
		return nil, fmt.Errorf("verifying tarball: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Extracting...")
	if err := archive.Extract(tarballPath, scratch); err != nil {
		return nil, fmt.Errorf("extracting tarball: %w", err)
	}

	src, err := vsicons.ParseFile(filepath.Join(scratch, filepath.FromSlash(manifestRelPath)))
	if err != nil {
		return nil, fmt.Errorf("parsing icon manifest: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Converting...")
	family := convert.Convert(src, convert.Metadata{
		Name:   cfg.ThemeName,
		Author: cfg.ThemeAuthor,
	}, convert.Options{
		IncludeLanguageIDs: opts.IncludeLanguageIDs,
	})

	fmt.Fprintf(os.Stderr, "Copying icons to %s...\n", cfg.IconsDir)
	if err := assets.Sync(filepath.Join(scratch, filepath.FromSlash(iconsRelPath)), cfg.IconsDir); err != nil {
		return nil, fmt.Errorf("copying icon assets: %w", err)
	}

	themePath := filepath.Join(cfg.ThemesDir, cfg.ThemeFile)
	if err := writeTheme(themePath, family); err != nil {
		return nil, err
	}

	if err := WriteMarker(cfg.MarkerFile, version.Version); err != nil {
		return nil, err
	}

	return &Result{Version: version.Version}, nil
}

// writeTheme pretty-prints the theme family to path, creating the directory if
// needed.
func writeTheme(path string, family *icontheme.Family) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating theme directory: %w", err)
	}

	data, err := json.MarshalIndent(family, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}
	return nil
}
