package convert

import (
	"strings"

	"github.com/iconport-labs/iconport/internal/icontheme"
	"github.com/iconport-labs/iconport/internal/vsicons"
)

// iconPathPrefix is where the asset-copy step places every icon image,
// relative to the generated theme file's project root.
const iconPathPrefix = "./icons/"

// Metadata holds the family-level fields written into the output. These
// describe the integration, not the input.
type Metadata struct {
	Name   string
	Author string
}

// Options tune conversion behavior.
type Options struct {
	// IncludeLanguageIDs folds languageIds identifiers into the icon-key
	// table. Upstream disables this mapping in current releases, so it is
	// off by default.
	IncludeLanguageIDs bool
}

// Convert produces a complete theme family from one source manifest. The dark
// theme is always present; a light theme is appended iff the source has a
// light block.
func Convert(src *vsicons.Manifest, meta Metadata, opts Options) *icontheme.Family {
	dark := convertDark(src, meta, opts)

	themes := []icontheme.Theme{dark}
	if src.Light != nil {
		themes = append(themes, convertLight(src, dark, meta, opts))
	}

	return &icontheme.Family{
		Schema: icontheme.SchemaURL,
		Name:   meta.Name,
		Author: meta.Author,
		Themes: themes,
	}
}

func convertDark(src *vsicons.Manifest, meta Metadata, opts Options) icontheme.Theme {
	langs := src.LanguageIDs
	if !opts.IncludeLanguageIDs {
		langs = nil
	}
	stems, suffixes, icons := collectFileMappings(src, src.FileNames, src.FileExtensions, langs)

	return icontheme.Theme{
		Name:                meta.Name,
		Appearance:          icontheme.AppearanceDark,
		DirectoryIcons:      resolveDirectoryIcons(src, src.Folder, src.FolderExpanded),
		NamedDirectoryIcons: resolveNamedDirectoryIcons(src, src.FolderNames, src.FolderNamesExpanded),
		FileStems:           stems,
		FileSuffixes:        suffixes,
		FileIcons:           icons,
	}
}

// convertLight builds the light theme by field-by-field merge against the
// already-resolved dark theme. It never copies the dark theme wholesale: a
// light field that is present but empty is an override, not a gap.
func convertLight(src *vsicons.Manifest, dark icontheme.Theme, meta Metadata, opts Options) icontheme.Theme {
	light := src.Light

	// Name and extension maps fall back as whole fields when light carries
	// no override (nil map), never entry-by-entry.
	names := light.FileNames
	if names == nil {
		names = src.FileNames
	}
	exts := light.FileExtensions
	if exts == nil {
		exts = src.FileExtensions
	}
	var langs map[string]string
	if opts.IncludeLanguageIDs {
		langs = light.LanguageIDs
		if langs == nil {
			langs = src.LanguageIDs
		}
	}
	stems, suffixes, icons := collectFileMappings(src, names, exts, langs)

	folderNames := light.FolderNames
	if folderNames == nil {
		folderNames = src.FolderNames
	}
	folderNamesExpanded := light.FolderNamesExpanded
	if folderNamesExpanded == nil {
		folderNamesExpanded = src.FolderNamesExpanded
	}

	return icontheme.Theme{
		Name:                meta.Name + " Light",
		Appearance:          icontheme.AppearanceLight,
		DirectoryIcons:      lightDirectoryIcons(src, light, dark.DirectoryIcons),
		NamedDirectoryIcons: resolveNamedDirectoryIcons(src, folderNames, folderNamesExpanded),
		FileStems:           stems,
		FileSuffixes:        suffixes,
		FileIcons:           icons,
	}
}

// normalizeIconPath extracts the final path segment of a definition's iconPath
// and rebases it under the output icons directory. Missing definitions and
// empty paths yield nil, never an error.
func normalizeIconPath(def *vsicons.IconDefinition) *string {
	if def == nil {
		return nil
	}
	segment := def.IconPath
	if i := strings.LastIndexByte(segment, '/'); i >= 0 {
		segment = segment[i+1:]
	}
	if segment == "" {
		return nil
	}
	p := iconPathPrefix + segment
	return &p
}

// resolveDirectoryIcons resolves the default collapsed/expanded glyph pair.
// The field is omitted entirely when neither identifier resolves.
func resolveDirectoryIcons(src *vsicons.Manifest, collapsedID, expandedID string) *icontheme.DirectoryIcons {
	collapsed := normalizeIconPath(src.Definition(collapsedID))
	expanded := normalizeIconPath(src.Definition(expandedID))
	if collapsed == nil && expanded == nil {
		return nil
	}
	return &icontheme.DirectoryIcons{Collapsed: collapsed, Expanded: expanded}
}

// lightDirectoryIcons resolves the light default glyph pair, falling back per
// field to the dark theme's resolved paths — not to the dark identifiers — so
// the light theme never exposes an unresolved identifier.
func lightDirectoryIcons(src *vsicons.Manifest, light *vsicons.LightOverrides, dark *icontheme.DirectoryIcons) *icontheme.DirectoryIcons {
	collapsed := normalizeIconPath(src.Definition(light.Folder))
	expanded := normalizeIconPath(src.Definition(light.FolderExpanded))
	if collapsed == nil && dark != nil {
		collapsed = dark.Collapsed
	}
	if expanded == nil && dark != nil {
		expanded = dark.Expanded
	}
	if collapsed == nil && expanded == nil {
		return nil
	}
	return &icontheme.DirectoryIcons{Collapsed: collapsed, Expanded: expanded}
}

// resolveNamedDirectoryIcons converts the by-name directory mappings. A
// directory name is emitted only when its collapsed and expanded identifiers
// both resolve; partially-resolved names are excluded entirely.
func resolveNamedDirectoryIcons(src *vsicons.Manifest, collapsedNames, expandedNames map[string]string) map[string]icontheme.DirectoryIcons {
	if len(collapsedNames) == 0 {
		return nil
	}

	named := make(map[string]icontheme.DirectoryIcons)
	for name, collapsedID := range collapsedNames {
		collapsed := normalizeIconPath(src.Definition(collapsedID))
		if collapsed == nil {
			continue
		}
		expandedID, ok := expandedNames[name]
		if !ok {
			continue
		}
		expanded := normalizeIconPath(src.Definition(expandedID))
		if expanded == nil {
			continue
		}
		named[name] = icontheme.DirectoryIcons{Collapsed: collapsed, Expanded: expanded}
	}
	if len(named) == 0 {
		return nil
	}
	return named
}

// collectFileMappings copies the name→identifier and suffix→identifier pairs
// verbatim and builds the icon-key table for every identifier that resolves.
// Identifiers that fail to resolve stay referenced in the stem/suffix maps but
// get no table entry; the consumer treats those as "no icon".
func collectFileMappings(src *vsicons.Manifest, names, exts, langs map[string]string) (stems, suffixes map[string]string, icons map[string]icontheme.FileIcon) {
	stems = make(map[string]string, len(names))
	suffixes = make(map[string]string, len(exts))

	// Local ordered set of referenced identifiers, scoped to this call.
	var referenced []string
	seen := make(map[string]bool)
	refer := func(id string) {
		if !seen[id] {
			seen[id] = true
			referenced = append(referenced, id)
		}
	}

	for name, id := range names {
		stems[name] = id
		refer(id)
	}
	for ext, id := range exts {
		suffixes[ext] = id
		refer(id)
	}

	icons = make(map[string]icontheme.FileIcon, len(referenced))
	for _, id := range referenced {
		if p := normalizeIconPath(src.Definition(id)); p != nil {
			icons[id] = icontheme.FileIcon{Path: *p}
		}
	}

	// Language identifiers extend the icon-key table only; identifiers
	// already referenced by a stem or suffix keep their existing entry.
	for _, id := range langs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p := normalizeIconPath(src.Definition(id)); p != nil {
			icons[id] = icontheme.FileIcon{Path: *p}
		}
	}

	return stems, suffixes, icons
}
