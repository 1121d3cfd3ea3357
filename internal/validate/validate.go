// Package validate checks a marker dataset against the schema every
// persisted collection must satisfy. It operates on decoded JSON (any)
// rather than the typed geojson structs so it can also judge files that do
// not have the expected shape at all.
package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/markermap/markermap/internal/geojson"
)

// Bytes validates raw JSON. A file that does not parse at all yields a
// single violation.
func Bytes(data []byte) []string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return []string{fmt.Sprintf("file is not valid JSON: %v", err)}
	}
	return Collection(v)
}

// Collection validates a decoded dataset and returns the ordered list of
// violations. An empty list means the dataset is valid. The input is never
// mutated.
func Collection(v any) []string {
	root, ok := v.(map[string]any)
	if !ok || root["type"] != geojson.TypeFeatureCollection {
		return []string{"root must be a GeoJSON FeatureCollection object"}
	}
	features, ok := root["features"].([]any)
	if !ok {
		return []string{"root must have a features array"}
	}

	var violations []string
	seen := map[string]bool{}

	for i, entry := range features {
		feature, ok := entry.(map[string]any)
		if !ok || feature["type"] != geojson.TypeFeature {
			violations = append(violations, fmt.Sprintf("feature %d: entry is not a Feature object", i))
			continue
		}

		props, _ := feature["properties"].(map[string]any)
		violations = append(violations, checkProperties(i, props, seen)...)
		violations = append(violations, checkGeometry(i, feature["geometry"])...)
	}

	return violations
}

func checkProperties(i int, props map[string]any, seen map[string]bool) []string {
	var violations []string

	id, _ := props["id"].(string)
	if id == "" {
		violations = append(violations, fmt.Sprintf("feature %d: missing or empty id", i))
	} else if seen[id] {
		violations = append(violations, fmt.Sprintf("feature %d: duplicate id %q", i, id))
	} else {
		seen[id] = true
	}

	if title, _ := props["title"].(string); title == "" {
		violations = append(violations, fmt.Sprintf("feature %d: missing or empty title", i))
	}

	if link, ok := props["link"]; ok {
		s, _ := link.(string)
		if !IsHTTPURL(s) {
			violations = append(violations, fmt.Sprintf("feature %d: link %q is not a valid http(s) URL", i, s))
		}
	}

	if icon, ok := props["icon"]; ok {
		s, _ := icon.(string)
		if s != geojson.IconDefault && !IsHTTPURL(s) {
			violations = append(violations, fmt.Sprintf("feature %d: icon %q must be %q or a valid http(s) URL", i, s, geojson.IconDefault))
		}
	}

	updatedAt, _ := props["updated_at"].(string)
	if _, err := time.Parse(time.RFC3339, updatedAt); err != nil {
		violations = append(violations, fmt.Sprintf("feature %d: missing or invalid updated_at (want RFC 3339)", i))
	}

	return violations
}

func checkGeometry(i int, v any) []string {
	geometry, ok := v.(map[string]any)
	if !ok || geometry["type"] != geojson.TypePoint {
		return []string{fmt.Sprintf("feature %d: geometry must be a Point", i)}
	}
	coords, ok := geometry["coordinates"].([]any)
	if !ok || len(coords) != 2 {
		return []string{fmt.Sprintf("feature %d: geometry must have exactly two numeric coordinates", i)}
	}
	lng, lngOK := coords[0].(float64)
	lat, latOK := coords[1].(float64)
	if !lngOK || !latOK {
		return []string{fmt.Sprintf("feature %d: geometry must have exactly two numeric coordinates", i)}
	}

	// Latitude is checked first even though it is stored second; the stored
	// order is [longitude, latitude].
	var violations []string
	if lat < -90 || lat > 90 {
		violations = append(violations, fmt.Sprintf("feature %d: latitude %v out of range [-90, 90]", i, lat))
	}
	if lng < -180 || lng > 180 {
		violations = append(violations, fmt.Sprintf("feature %d: longitude %v out of range [-180, 180]", i, lng))
	}
	return violations
}

// IsHTTPURL reports whether s is a syntactically valid absolute http or
// https URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
