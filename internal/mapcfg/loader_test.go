package mapcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Title != Default().Title {
		t.Errorf("Title = %q, want default %q", cfg.Title, Default().Title)
	}
	if cfg.TileURL == "" {
		t.Error("TileURL empty, want default tile server")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	content := "title: City Guide\nzoom: 13\ncenter:\n  lat: 48.8566\n  lng: 2.3522\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Title != "City Guide" {
		t.Errorf("Title = %q, want %q", cfg.Title, "City Guide")
	}
	if cfg.Zoom != 13 {
		t.Errorf("Zoom = %d, want 13", cfg.Zoom)
	}
	if cfg.Center.Lat != 48.8566 || cfg.Center.Lng != 2.3522 {
		t.Errorf("Center = %+v, want Paris", cfg.Center)
	}
	// Unset keys keep their defaults.
	if cfg.TileURL != Default().TileURL {
		t.Errorf("TileURL = %q, want default preserved", cfg.TileURL)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}
