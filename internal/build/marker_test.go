package build

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMarkerMissing(t *testing.T) {
	v, err := ReadMarker(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "" {
		t.Errorf("got %q, want empty", v)
	}
}

func TestWriteAndReadMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".icon-theme-version")

	if err := WriteMarker(path, "5.12.0"); err != nil {
		t.Fatalf("WriteMarker failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5.12.0\n" {
		t.Errorf("marker content = %q", data)
	}

	v, err := ReadMarker(path)
	if err != nil {
		t.Fatalf("ReadMarker failed: %v", err)
	}
	if v != "5.12.0" {
		t.Errorf("got %q, want 5.12.0", v)
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		recorded  string
		want      bool
	}{
		{"newer patch", "5.12.1", "5.12.0", true},
		{"same version", "5.12.0", "5.12.0", false},
		{"older", "5.11.0", "5.12.0", false},
		{"no marker yet", "5.12.0", "", true},
		{"v prefix tolerated", "v5.13.0", "5.12.0", true},
		{"corrupt marker never blocks", "5.12.0", "garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsNewer(tt.candidate, tt.recorded)
			if err != nil {
				t.Fatalf("IsNewer failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.candidate, tt.recorded, got, tt.want)
			}
		})
	}
}

func TestIsNewerBadCandidate(t *testing.T) {
	if _, err := IsNewer("garbage", "5.12.0"); err == nil {
		t.Error("expected error for unparseable candidate")
	}
}
