package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markermap/markermap/internal/geojson"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markers.geojson")
	store := NewStore(path)

	col := geojson.NewCollection()
	col.Append(geojson.NewFeature(geojson.Properties{
		ID:        "m-1",
		Title:     "Cafe",
		UpdatedAt: "2026-08-30T12:00:00Z",
	}, -122.2, 37.1))

	if err := store.Save(col); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved dataset: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved dataset missing trailing newline")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Features) != 1 || loaded.Features[0].Properties.ID != "m-1" {
		t.Errorf("loaded collection = %+v, want one feature m-1", loaded)
	}
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "markers.geojson"))

	if err := store.Save(geojson.NewCollection()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "markers.geojson" {
		t.Errorf("dir contains %v, want only markers.geojson", entries)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.geojson"))
	if _, err := store.Load(); err == nil {
		t.Error("Load() error = nil, want error for missing dataset")
	}
}

func TestStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markers.geojson")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}
