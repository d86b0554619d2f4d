package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// createTarGz builds a tar.gz archive from name→content pairs.
func createTarGz(t *testing.T, files map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	for name, content := range files {
		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	tw.Close()
	gw.Close()

	path := filepath.Join(t.TempDir(), "archive.tgz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractTarGz(t *testing.T) {
	archivePath := createTarGz(t, map[string]string{
		"package/dist/material-icons.json": `{"iconDefinitions":{}}`,
		"package/icons/go.svg":             "<svg/>",
	})

	dest := t.TempDir()
	if err := Extract(archivePath, dest); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "package", "dist", "material-icons.json"))
	if err != nil {
		t.Fatalf("manifest not extracted: %v", err)
	}
	if string(data) != `{"iconDefinitions":{}}` {
		t.Errorf("manifest content mismatch: %q", data)
	}
	if _, err := os.Stat(filepath.Join(dest, "package", "icons", "go.svg")); err != nil {
		t.Errorf("icon not extracted: %v", err)
	}
}

func TestExtractRejectsTraversal(t *testing.T) {
	archivePath := createTarGz(t, map[string]string{
		"../evil.txt": "pwned",
	})

	dest := t.TempDir()
	if err := Extract(archivePath, dest); err == nil {
		t.Fatal("expected error for traversal entry")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt")); err == nil {
		t.Error("traversal entry was written outside destination")
	}
}

func TestExtractZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("package/icons/rust.svg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<svg/>")); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	archivePath := filepath.Join(t.TempDir(), "archive.zip")
	if err := os.WriteFile(archivePath, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	dest := t.TempDir()
	if err := Extract(archivePath, dest); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "package", "icons", "rust.svg")); err != nil {
		t.Errorf("zip entry not extracted: %v", err)
	}
}

func TestExtractCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tgz")
	if err := os.WriteFile(path, []byte("not a gzip stream"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Extract(path, t.TempDir()); err == nil {
		t.Error("expected error for corrupt archive")
	}
}
