package vsicons

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ParseFile reads, schema-validates, and decodes the manifest at path. A
// schema-invalid manifest is a hard error; callers treat it like any other
// parse failure.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse schema-validates and decodes raw manifest JSON.
func Parse(data []byte) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest failed schema validation: %s", summarizeIssues(result.Issues))
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if len(m.IconDefinitions) == 0 {
		return nil, fmt.Errorf("manifest has no iconDefinitions")
	}
	return &m, nil
}

// summarizeIssues renders up to three issues on one line for the fatal error.
func summarizeIssues(issues []ValidationIssue) string {
	var parts []string
	for i, issue := range issues {
		if i == 3 {
			parts = append(parts, fmt.Sprintf("and %d more", len(issues)-i))
			break
		}
		if issue.Path != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}
