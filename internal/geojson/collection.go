package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Find returns the feature with the given marker id, or nil.
func (c *FeatureCollection) Find(id string) *Feature {
	for _, f := range c.Features {
		if f.Properties.ID == id {
			return f
		}
	}
	return nil
}

// Has reports whether a feature with the given marker id exists.
func (c *FeatureCollection) Has(id string) bool {
	return c.Find(id) != nil
}

// Append adds a feature and restores the sort order.
func (c *FeatureCollection) Append(f *Feature) {
	c.Features = append(c.Features, f)
	c.Sort()
}

// Remove deletes the feature with the given id and restores the sort order.
// It reports whether a feature was removed.
func (c *FeatureCollection) Remove(id string) bool {
	for i, f := range c.Features {
		if f.Properties.ID == id {
			c.Features = append(c.Features[:i], c.Features[i+1:]...)
			c.Sort()
			return true
		}
	}
	return false
}

// Sort orders features by marker id (lexicographic) for deterministic diffs.
func (c *FeatureCollection) Sort() {
	sort.SliceStable(c.Features, func(i, j int) bool {
		return c.Features[i].Properties.ID < c.Features[j].Properties.ID
	})
}

// Decode parses a FeatureCollection from raw JSON.
func Decode(data []byte) (*FeatureCollection, error) {
	var col FeatureCollection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("failed to parse feature collection: %w", err)
	}
	if col.Features == nil {
		col.Features = []*Feature{}
	}
	return &col, nil
}

// Encode renders the collection pretty-printed with a trailing newline,
// the stable on-disk form.
func (c *FeatureCollection) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode feature collection: %w", err)
	}
	// json.Encoder already terminates with a single newline.
	return buf.Bytes(), nil
}
