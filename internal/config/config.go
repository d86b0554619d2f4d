package config

import (
	"github.com/iconport-labs/iconport/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "iconport"
	fileType = "yaml"
)

// Settings holds the resolved configuration for one build run.
type Settings struct {
	// Registry is the npm registry base URL (or mirror) to fetch from.
	Registry string
	// Package is the upstream npm package to import.
	Package string
	// IconsDir is the project-relative output directory for icon assets.
	IconsDir string
	// ThemesDir is the project-relative output directory for the theme JSON.
	ThemesDir string
	// ThemeFile is the file name of the generated theme JSON inside ThemesDir.
	ThemeFile string
	// MarkerFile is the project-relative path of the processed-version marker.
	MarkerFile string
	// ThemeName and ThemeAuthor are written into the generated theme family.
	ThemeName   string
	ThemeAuthor string
}

// Load initializes Viper to read iconport.yaml from the working directory and
// the ICONPORT_* environment, then returns the resolved settings. A missing
// config file is not an error; branded defaults apply.
func Load() *Settings {
	viper.SetConfigName(fileName)
	viper.SetConfigType(fileType)
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault("registry", branding.RegistryURL())
	viper.SetDefault("package", branding.NPMPackage())
	viper.SetDefault("icons_dir", branding.IconsDir())
	viper.SetDefault("themes_dir", branding.ThemesDir())
	viper.SetDefault("theme_file", branding.ThemeFile())
	viper.SetDefault("marker_file", branding.MarkerFile())
	viper.SetDefault("theme_name", branding.ThemeName())
	viper.SetDefault("theme_author", branding.ThemeAuthor())

	// Ignore error if the config file doesn't exist.
	_ = viper.ReadInConfig()

	return &Settings{
		Registry:    viper.GetString("registry"),
		Package:     viper.GetString("package"),
		IconsDir:    viper.GetString("icons_dir"),
		ThemesDir:   viper.GetString("themes_dir"),
		ThemeFile:   viper.GetString("theme_file"),
		MarkerFile:  viper.GetString("marker_file"),
		ThemeName:   viper.GetString("theme_name"),
		ThemeAuthor: viper.GetString("theme_author"),
	}
}
