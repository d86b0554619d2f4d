package build

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/iconport-labs/iconport/internal/config"
	"github.com/iconport-labs/iconport/internal/icontheme"
	"github.com/iconport-labs/iconport/internal/npm"
)

const testManifest = `{
  "iconDefinitions": {
    "file_type_make": { "iconPath": "/x/make.svg" },
    "folder": { "iconPath": "/x/folder.svg" },
    "folder_open": { "iconPath": "/x/folder_open.svg" }
  },
  "folder": "folder",
  "folderExpanded": "folder_open",
  "fileNames": { "Makefile": "file_type_make" },
  "fileExtensions": {}
}`

// createPackageTarGz builds an npm-layout tarball with the manifest and two
// icon assets.
func createPackageTarGz(t *testing.T) []byte {
	t.Helper()
	files := map[string]string{
		"package/dist/material-icons.json": testManifest,
		"package/icons/make.svg":           "<svg/>",
		"package/icons/folder.svg":         "<svg/>",
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	tw.Close()
	gw.Close()
	return buf.Bytes()
}

// startRegistry serves version metadata and the tarball for one package.
func startRegistry(t *testing.T, version string, tarball []byte) *httptest.Server {
	t.Helper()
	sum := sha1.Sum(tarball)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tarballPath := fmt.Sprintf("/material-icon-theme/-/material-icon-theme-%s.tgz", version)
	mux.HandleFunc("/material-icon-theme/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"name":"material-icon-theme","version":%q,"dist":{"tarball":%q,"shasum":%q}}`,
			version, server.URL+tarballPath, hex.EncodeToString(sum[:]))
	})
	mux.HandleFunc(tarballPath, func(w http.ResponseWriter, r *http.Request) {
		w.Write(tarball)
	})
	return server
}

func testSettings(t *testing.T, registry string) *config.Settings {
	t.Helper()
	out := t.TempDir()
	return &config.Settings{
		Registry:    registry,
		Package:     "material-icon-theme",
		IconsDir:    filepath.Join(out, "icons"),
		ThemesDir:   filepath.Join(out, "icon_themes"),
		ThemeFile:   "material-icon-theme.json",
		MarkerFile:  filepath.Join(out, ".icon-theme-version"),
		ThemeName:   "Material Icon Theme",
		ThemeAuthor: "Tester",
	}
}

func TestRunEndToEnd(t *testing.T) {
	server := startRegistry(t, "5.12.0", createPackageTarGz(t))
	cfg := testSettings(t, server.URL)
	client := npm.New(server.URL, npm.WithHTTPClient(server.Client()))

	result, err := Run(cfg, client, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Skipped {
		t.Fatal("first run should not be skipped")
	}
	if result.Version != "5.12.0" {
		t.Errorf("Version = %q, want 5.12.0", result.Version)
	}

	// Icon assets copied.
	for _, name := range []string{"make.svg", "folder.svg"} {
		if _, err := os.Stat(filepath.Join(cfg.IconsDir, name)); err != nil {
			t.Errorf("icon %s not published: %v", name, err)
		}
	}

	// Theme written with the expected dark variant.
	data, err := os.ReadFile(filepath.Join(cfg.ThemesDir, cfg.ThemeFile))
	if err != nil {
		t.Fatalf("theme not written: %v", err)
	}
	var family icontheme.Family
	if err := json.Unmarshal(data, &family); err != nil {
		t.Fatalf("theme is not valid JSON: %v", err)
	}
	if len(family.Themes) != 1 {
		t.Fatalf("got %d themes, want 1", len(family.Themes))
	}
	theme := family.Themes[0]
	if theme.Appearance != icontheme.AppearanceDark {
		t.Errorf("Appearance = %q, want dark", theme.Appearance)
	}
	if theme.FileStems["Makefile"] != "file_type_make" {
		t.Errorf("FileStems = %v", theme.FileStems)
	}
	if theme.FileIcons["file_type_make"].Path != "./icons/make.svg" {
		t.Errorf("FileIcons = %v", theme.FileIcons)
	}
	if theme.DirectoryIcons == nil || *theme.DirectoryIcons.Collapsed != "./icons/folder.svg" ||
		*theme.DirectoryIcons.Expanded != "./icons/folder_open.svg" {
		t.Errorf("DirectoryIcons = %+v", theme.DirectoryIcons)
	}

	// Marker records the processed version.
	marker, err := ReadMarker(cfg.MarkerFile)
	if err != nil {
		t.Fatal(err)
	}
	if marker != "5.12.0" {
		t.Errorf("marker = %q, want 5.12.0", marker)
	}
}

func TestRunSkipsWhenUpToDate(t *testing.T) {
	server := startRegistry(t, "5.12.0", createPackageTarGz(t))
	cfg := testSettings(t, server.URL)
	client := npm.New(server.URL, npm.WithHTTPClient(server.Client()))

	if _, err := Run(cfg, client, Options{}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	result, err := Run(cfg, client, Options{})
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !result.Skipped {
		t.Error("second run should have been skipped")
	}

	// --force re-imports the same version.
	result, err = Run(cfg, client, Options{Force: true})
	if err != nil {
		t.Fatalf("forced run failed: %v", err)
	}
	if result.Skipped {
		t.Error("forced run should not be skipped")
	}
}

func TestRunRegistryUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	cfg := testSettings(t, server.URL)
	client := npm.New(server.URL, npm.WithHTTPClient(server.Client()))
	server.Close()

	if _, err := Run(cfg, client, Options{}); err == nil {
		t.Error("expected error when registry is unreachable")
	}

	// No outputs on failure.
	if _, err := os.Stat(cfg.MarkerFile); err == nil {
		t.Error("marker written despite failed run")
	}
}

func TestRunCorruptTarball(t *testing.T) {
	server := startRegistry(t, "5.12.0", []byte("not a tarball"))
	cfg := testSettings(t, server.URL)
	client := npm.New(server.URL, npm.WithHTTPClient(server.Client()))

	if _, err := Run(cfg, client, Options{}); err == nil {
		t.Error("expected error for corrupt tarball")
	}
	if _, err := os.Stat(filepath.Join(cfg.ThemesDir, cfg.ThemeFile)); err == nil {
		t.Error("theme written despite failed run")
	}
}
