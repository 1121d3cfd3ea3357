// Package importer builds a fresh marker dataset from a tab-separated
// export. It shares no code path with the mutation engine; each run
// replaces the dataset wholesale.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/markermap/markermap/internal/geojson"
	"github.com/markermap/markermap/internal/utils"
)

// columnAliases maps accepted header spellings (lowercased) to the
// canonical column name.
var columnAliases = map[string]string{
	"id":          "id",
	"title":       "title",
	"name":        "title",
	"description": "description",
	"location":    "description",
	"link":        "link",
	"url":         "link",
	"category":    "category",
	"icon":        "icon",
	"latitude":    "latitude",
	"lat":         "latitude",
	"longitude":   "longitude",
	"lng":         "longitude",
	"lon":         "longitude",
}

// Import reads a TSV file and returns the collection it describes, sorted
// by id. The header row names the columns; id, title, latitude and
// longitude are required.
func Import(path string) (*geojson.FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer utils.Close(f)

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	columns := mapColumns(header)
	for _, required := range []string{"id", "title", "latitude", "longitude"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("import file has no %s column", required)
		}
	}

	col := geojson.NewCollection()
	now := time.Now().UTC().Format(time.RFC3339)

	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		feature, err := mapRow(row, columns, now)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if col.Has(feature.Properties.ID) {
			return nil, fmt.Errorf("line %d: duplicate id %q", line, feature.Properties.ID)
		}
		col.Features = append(col.Features, feature)
	}

	col.Sort()
	return col, nil
}

func mapColumns(header []string) map[string]int {
	columns := map[string]int{}
	for i, name := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, taken := columns[canonical]; !taken {
			columns[canonical] = i
		}
	}
	return columns
}

func mapRow(row []string, columns map[string]int, updatedAt string) (*geojson.Feature, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id := cell("id")
	if id == "" {
		return nil, fmt.Errorf("missing id")
	}
	title := cell("title")
	if title == "" {
		return nil, fmt.Errorf("missing title for id %q", id)
	}

	lat, err := strconv.ParseFloat(cell("latitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q is not a number", cell("latitude"))
	}
	lng, err := strconv.ParseFloat(cell("longitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q is not a number", cell("longitude"))
	}

	props := geojson.Properties{
		ID:          id,
		Title:       title,
		Description: cell("description"),
		Link:        cell("link"),
		Category:    cell("category"),
		Icon:        cell("icon"),
		UpdatedAt:   updatedAt,
	}
	return geojson.NewFeature(props, lng, lat), nil
}
