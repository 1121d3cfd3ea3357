// Package mapcfg loads the map page configuration (map.yaml).
package mapcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the served map page.
type Config struct {
	Title       string `yaml:"title"`
	TileURL     string `yaml:"tile_url"`
	Attribution string `yaml:"attribution"`
	Center      Center `yaml:"center"`
	Zoom        int    `yaml:"zoom"`
}

// Center is the initial map viewport position.
type Center struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Default returns the config used when no map.yaml is present.
func Default() Config {
	return Config{
		Title:       "Marker Map",
		TileURL:     "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "&copy; OpenStreetMap contributors",
		Center:      Center{Lat: 0, Lng: 0},
		Zoom:        2,
	}
}

// Loader handles loading and parsing of the map config file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the config at filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the map config. A missing file falls back to the
// defaults; a present but malformed file is an error.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read map config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse map config yaml: %w", err)
	}
	return cfg, nil
}
