package snapshots

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadManifestReturnsDefaultOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := readManifest(path, 5)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if m.RetentionDays != 5 || m.Divisions == nil {
		t.Fatalf("expected default manifest, got %+v", m)
	}
}

func TestReadManifestFillsDivisions(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(`{"version":1}`), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.Divisions == nil {
		t.Fatalf("expected non-nil divisions map")
	}
}

func TestWriteManifestFailsWhenPathMissing(t *testing.T) {
	if err := writeManifest(filepath.Join("does-not-exist", "missing"), defaultManifest(3)); err == nil {
		t.Fatalf("expected error when base path missing")
	}
}

func TestWriteManifestSuccess(t *testing.T) {
	dir := t.TempDir()
	m := defaultManifest(4)
	m.Divisions["6th_girls"] = DivisionMeta{Name: "6th Girls", Dates: []string{"2024-01-06"}}
	if err := writeManifest(dir, m); err != nil {
		t.Fatalf("expected manifest to be written, got %v", err)
	}
	got, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest file, got %v", err)
	}
	if got.RetentionDays != 4 || got.Divisions["6th_girls"].Dates[0] != "2024-01-06" {
		t.Fatalf("unexpected manifest %+v", got)
	}
}
