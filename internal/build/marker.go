package build

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ReadMarker returns the version recorded by the last successful import, or
// "" when no marker exists yet (first run).
func ReadMarker(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading version marker: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteMarker records the processed version in the marker file.
func WriteMarker(path, version string) error {
	if err := os.WriteFile(path, []byte(version+"\n"), 0644); err != nil {
		return fmt.Errorf("writing version marker: %w", err)
	}
	return nil
}

// IsNewer reports whether candidate is a strictly newer semver than recorded.
// An empty or unparseable recorded version always counts as older, so a
// corrupt marker never blocks an import.
func IsNewer(candidate, recorded string) (bool, error) {
	cv, err := parseSemver(candidate)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", candidate, err)
	}
	if recorded == "" {
		return true, nil
	}
	rv, err := parseSemver(recorded)
	if err != nil {
		return true, nil
	}
	return cv.GreaterThan(rv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
