package geojson

// Marker dataset types. The on-disk file is a standard GeoJSON
// FeatureCollection of Point features; every marker attribute lives in the
// feature's properties bag.

const (
	// TypeFeatureCollection is the required root "type" tag.
	TypeFeatureCollection = "FeatureCollection"
	// TypeFeature is the required per-entry "type" tag.
	TypeFeature = "Feature"
	// TypePoint is the only geometry type the dataset carries.
	TypePoint = "Point"

	// IconDefault marks a marker that uses the map's built-in icon.
	IconDefault = "default"
)

// FeatureCollection is the full marker dataset, kept sorted by marker id
// after every mutation so the persisted file diffs deterministically.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Feature is one marker on the map.
type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// Properties holds the marker attributes.
type Properties struct {
	// ID is the canonical unique identifier, immutable once assigned.
	ID string `json:"id"`

	// Title is the display name, required and non-empty.
	Title string `json:"title"`

	// Optional display fields, omitted from the file when unset.
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    string `json:"category,omitempty"`
	Icon        string `json:"icon,omitempty"` // "default" or an absolute http(s) URL

	// UpdatedAt is refreshed by the system on every create/update,
	// never user-supplied. RFC 3339, UTC.
	UpdatedAt string `json:"updated_at"`

	// FocusOnLoad asks the map page to pan to this marker on load.
	// Set only by an explicit update flag, never cleared by omission.
	FocusOnLoad bool `json:"focus_on_load,omitempty"`
}

// Geometry is the marker position. Coordinates are [longitude, latitude],
// longitude first, per the GeoJSON spec.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewCollection creates an empty, correctly tagged FeatureCollection.
func NewCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: []*Feature{},
	}
}

// NewFeature creates a tagged Point feature at the given position.
func NewFeature(props Properties, lng, lat float64) *Feature {
	return &Feature{
		Type:       TypeFeature,
		Properties: props,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: []float64{lng, lat},
		},
	}
}

// Lng returns the stored longitude (first coordinate).
func (f *Feature) Lng() float64 {
	if len(f.Geometry.Coordinates) > 0 {
		return f.Geometry.Coordinates[0]
	}
	return 0
}

// Lat returns the stored latitude (second coordinate).
func (f *Feature) Lat() float64 {
	if len(f.Geometry.Coordinates) > 1 {
		return f.Geometry.Coordinates[1]
	}
	return 0
}

// SetCoordinates replaces both axes together.
func (f *Feature) SetCoordinates(lng, lat float64) {
	f.Geometry.Coordinates = []float64{lng, lat}
}
