// Package assets copies the extracted icon images into the project's output
// icon directory.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// excludedNames are junk entries skipped during the copy.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
	"Thumbs.db": true,
}

// Sync copies srcDir into destDir, replacing any previous contents so removed
// upstream icons do not linger across imports.
func Sync(srcDir, destDir string) error {
	if _, err := os.Stat(destDir); err == nil {
		if err := os.RemoveAll(destDir); err != nil {
			return fmt.Errorf("removing existing icon directory %s: %w", destDir, err)
		}
	}

	if err := copyDir(srcDir, destDir); err != nil {
		return fmt.Errorf("copying %s to %s: %w", srcDir, destDir, err)
	}
	return nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode())
}
