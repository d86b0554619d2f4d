// Package icontheme defines the Zed icon-theme schema (the "target" side of
// the conversion) and the fixed family-level metadata constants.
package icontheme

// SchemaURL is the JSON Schema tag written into every generated theme family.
const SchemaURL = "https://zed.dev/schemas/icon_themes/v0.2.0.json"

// Appearance values for a theme variant.
const (
	AppearanceDark  = "dark"
	AppearanceLight = "light"
)

// Family is a complete icon-theme file: metadata plus one theme per appearance.
type Family struct {
	Schema string  `json:"$schema"`
	Name   string  `json:"name"`
	Author string  `json:"author"`
	Themes []Theme `json:"themes"`
}

// Theme is one appearance variant. Consumers resolve the identifiers in
// FileStems and FileSuffixes through FileIcons; identifiers missing from
// FileIcons render as "no icon".
type Theme struct {
	Name                string                    `json:"name"`
	Appearance          string                    `json:"appearance"`
	DirectoryIcons      *DirectoryIcons           `json:"directory_icons,omitempty"`
	NamedDirectoryIcons map[string]DirectoryIcons `json:"named_directory_icons,omitempty"`
	FileStems           map[string]string         `json:"file_stems"`
	FileSuffixes        map[string]string         `json:"file_suffixes"`
	FileIcons           map[string]FileIcon       `json:"file_icons"`
}

// DirectoryIcons is a collapsed/expanded image-path pair. Either side may be
// null when only one state resolved.
type DirectoryIcons struct {
	Collapsed *string `json:"collapsed"`
	Expanded  *string `json:"expanded"`
}

// FileIcon is the image-path record behind one icon key.
type FileIcon struct {
	Path string `json:"path"`
}
