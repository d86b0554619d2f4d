package npm

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadTarball(t *testing.T) {
	content := []byte("tarball bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
		w.Write(content)
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))
	v := &Version{
		Version: "1.0.0",
		Dist:    Dist{Tarball: server.URL + "/pkg/-/pkg-1.0.0.tgz"},
	}

	dest := t.TempDir()
	path, err := c.DownloadTarball(v, dest)
	if err != nil {
		t.Fatalf("DownloadTarball failed: %v", err)
	}
	if filepath.Base(path) != "pkg-1.0.0.tgz" {
		t.Errorf("downloaded file name = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(content) {
		t.Error("downloaded content mismatch")
	}
}

func TestDownloadTarballServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))
	v := &Version{Version: "1.0.0", Dist: Dist{Tarball: server.URL + "/pkg-1.0.0.tgz"}}

	if _, err := c.DownloadTarball(v, t.TempDir()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestVerifyShasum(t *testing.T) {
	content := []byte("tarball bytes")
	sum := sha1.Sum(content)

	path := filepath.Join(t.TempDir(), "pkg.tgz")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	v := &Version{Dist: Dist{Shasum: hex.EncodeToString(sum[:])}}
	if err := VerifyShasum(v, path); err != nil {
		t.Errorf("VerifyShasum failed: %v", err)
	}

	v.Dist.Shasum = "0000000000000000000000000000000000000000"
	if err := VerifyShasum(v, path); err == nil {
		t.Error("expected checksum mismatch error")
	}
}

func TestVerifyShasumSkippedWithoutDigest(t *testing.T) {
	v := &Version{}
	if err := VerifyShasum(v, "/nonexistent"); err != nil {
		t.Errorf("missing shasum should skip verification, got %v", err)
	}
}
