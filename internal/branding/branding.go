// Package branding provides compile-time identity values for the CLI.
//
// Forkers pointing the importer at a different upstream icon package edit
// branding.yaml, then rebuild. Go's //go:embed bakes the file into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	NPMPackage  string `yaml:"npm_package"`
	RegistryURL string `yaml:"registry_url"`
	ThemeName   string `yaml:"theme_name"`
	ThemeAuthor string `yaml:"theme_author"`
	IconsDir    string `yaml:"icons_dir"`
	ThemesDir   string `yaml:"themes_dir"`
	ThemeFile   string `yaml:"theme_file"`
	MarkerFile  string `yaml:"marker_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "iconport",
			DisplayName: "Iconport",
			Description: "Imports the material-icon-theme icon set into a Zed icon theme",
			EnvPrefix:   "ICONPORT",
			GoModule:    "github.com/iconport-labs/iconport",
			NPMPackage:  "material-icon-theme",
			RegistryURL: "https://registry.npmjs.org",
			ThemeName:   "Material Icon Theme",
			ThemeAuthor: "Philipp Kief",
			IconsDir:    "icons",
			ThemesDir:   "icon_themes",
			ThemeFile:   "material-icon-theme.json",
			MarkerFile:  ".icon-theme-version",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "iconport").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Iconport").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "ICONPORT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// NPMPackage returns the upstream npm package name to import.
func NPMPackage() string { load(); return defaults.NPMPackage }

// RegistryURL returns the default npm registry base URL.
func RegistryURL() string { load(); return defaults.RegistryURL }

// ThemeName returns the display name written into the generated theme family.
func ThemeName() string { load(); return defaults.ThemeName }

// ThemeAuthor returns the author string written into the generated theme family.
func ThemeAuthor() string { load(); return defaults.ThemeAuthor }

// IconsDir returns the project-relative output directory for icon assets.
func IconsDir() string { load(); return defaults.IconsDir }

// ThemesDir returns the project-relative output directory for theme JSON files.
func ThemesDir() string { load(); return defaults.ThemesDir }

// ThemeFile returns the file name of the generated theme JSON.
func ThemeFile() string { load(); return defaults.ThemeFile }

// MarkerFile returns the file name of the processed-version marker.
func MarkerFile() string { load(); return defaults.MarkerFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("MIRROR") → "ICONPORT_MIRROR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
