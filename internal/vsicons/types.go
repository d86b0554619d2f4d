package vsicons

// IconDefinition holds the image asset backing one icon identifier.
type IconDefinition struct {
	IconPath string `json:"iconPath"`
}

// Manifest is the VS Code icon-theme manifest. Every association field maps a
// match key (directory name, file name, file extension, language id) to an icon
// identifier that must resolve through IconDefinitions to be usable.
type Manifest struct {
	IconDefinitions     map[string]IconDefinition `json:"iconDefinitions"`
	Folder              string                    `json:"folder,omitempty"`
	FolderExpanded      string                    `json:"folderExpanded,omitempty"`
	FolderNames         map[string]string         `json:"folderNames,omitempty"`
	FolderNamesExpanded map[string]string         `json:"folderNamesExpanded,omitempty"`
	FileExtensions      map[string]string         `json:"fileExtensions,omitempty"`
	FileNames           map[string]string         `json:"fileNames,omitempty"`
	LanguageIDs         map[string]string         `json:"languageIds,omitempty"`
	Light               *LightOverrides           `json:"light,omitempty"`
}

// LightOverrides is the partial light-appearance block. Any nil/empty field
// falls back to the corresponding dark field during conversion.
type LightOverrides struct {
	Folder              string            `json:"folder,omitempty"`
	FolderExpanded      string            `json:"folderExpanded,omitempty"`
	FolderNames         map[string]string `json:"folderNames,omitempty"`
	FolderNamesExpanded map[string]string `json:"folderNamesExpanded,omitempty"`
	FileExtensions      map[string]string `json:"fileExtensions,omitempty"`
	FileNames           map[string]string `json:"fileNames,omitempty"`
	LanguageIDs         map[string]string `json:"languageIds,omitempty"`
}

// Definition looks up an icon identifier, returning nil when it has no entry.
func (m *Manifest) Definition(id string) *IconDefinition {
	if id == "" {
		return nil
	}
	def, ok := m.IconDefinitions[id]
	if !ok {
		return nil
	}
	return &def
}
