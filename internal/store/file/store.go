// Package file persists the marker dataset as a pretty-printed GeoJSON file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/markermap/markermap/internal/geojson"
)

// Store reads and writes one dataset file.
type Store struct {
	path string
}

// NewStore creates a store for the dataset at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the dataset location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the dataset. A missing file is an error; the
// pipeline treats it as fatal before any mutation is attempted.
func (s *Store) Load() (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	col, err := geojson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", s.path, err)
	}
	return col, nil
}

// Save writes the complete collection, all-or-nothing. The new content is
// written to a temp file in the same directory and renamed over the old one
// so a partially written dataset is never observable.
func (s *Store) Save(col *geojson.FeatureCollection) error {
	data, err := col.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dataset file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp dataset file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace dataset file: %w", err)
	}
	return nil
}
