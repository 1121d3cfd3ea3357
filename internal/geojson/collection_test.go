package geojson

import (
	"strings"
	"testing"
)

func feature(id string) *Feature {
	return NewFeature(Properties{
		ID:        id,
		Title:     "marker " + id,
		UpdatedAt: "2026-08-30T12:00:00Z",
	}, -122.2, 37.1)
}

func TestCollectionSortAndLookup(t *testing.T) {
	col := NewCollection()
	col.Features = append(col.Features, feature("b"), feature("c"), feature("a"))
	col.Sort()

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got := col.Features[i].Properties.ID; got != id {
			t.Errorf("features[%d].id = %q, want %q", i, got, id)
		}
	}

	if col.Find("b") == nil {
		t.Error("Find(b) = nil, want feature")
	}
	if col.Find("z") != nil {
		t.Error("Find(z) != nil, want nil")
	}
	if !col.Has("a") {
		t.Error("Has(a) = false, want true")
	}
}

func TestCollectionAppendKeepsOrder(t *testing.T) {
	col := NewCollection()
	col.Append(feature("c"))
	col.Append(feature("a"))

	if col.Features[0].Properties.ID != "a" || col.Features[1].Properties.ID != "c" {
		t.Errorf("append did not keep the collection sorted: %q, %q",
			col.Features[0].Properties.ID, col.Features[1].Properties.ID)
	}
}

func TestCollectionRemove(t *testing.T) {
	col := NewCollection()
	col.Append(feature("a"))
	col.Append(feature("b"))

	if !col.Remove("a") {
		t.Fatal("Remove(a) = false, want true")
	}
	if col.Has("a") {
		t.Error("a still present after Remove")
	}
	if len(col.Features) != 1 {
		t.Errorf("collection has %d features, want 1", len(col.Features))
	}
	if col.Remove("a") {
		t.Error("Remove(a) = true on second call, want false")
	}
}

func TestCoordinateOrder(t *testing.T) {
	f := feature("a")

	// Stored order is [longitude, latitude].
	if got := f.Geometry.Coordinates[0]; got != -122.2 {
		t.Errorf("coordinates[0] = %v, want longitude -122.2", got)
	}
	if got := f.Geometry.Coordinates[1]; got != 37.1 {
		t.Errorf("coordinates[1] = %v, want latitude 37.1", got)
	}
	if f.Lng() != -122.2 || f.Lat() != 37.1 {
		t.Errorf("Lng()/Lat() = %v/%v, want -122.2/37.1", f.Lng(), f.Lat())
	}

	f.SetCoordinates(10, 20)
	if f.Lng() != 10 || f.Lat() != 20 {
		t.Errorf("after SetCoordinates: Lng()/Lat() = %v/%v, want 10/20", f.Lng(), f.Lat())
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	col := NewCollection()
	col.Append(feature("a"))

	data, err := col.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("encoded dataset missing trailing newline")
	}
	if !strings.Contains(string(data), "  \"type\": \"FeatureCollection\"") {
		t.Error("encoded dataset is not pretty-printed")
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Features) != 1 {
		t.Fatalf("decoded %d features, want 1", len(decoded.Features))
	}
	if got := decoded.Features[0].Properties.ID; got != "a" {
		t.Errorf("decoded id = %q, want %q", got, "a")
	}
}

func TestEncodeOmitsAbsentOptionalProperties(t *testing.T) {
	col := NewCollection()
	col.Append(feature("a"))

	data, err := col.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for _, key := range []string{"description", "link", "category", "icon", "focus_on_load"} {
		if strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("encoded dataset contains absent optional property %q", key)
		}
	}
}

func TestDecodeBadJSON(t *testing.T) {
	if _, err := Decode([]byte("{nope")); err == nil {
		t.Error("Decode() error = nil, want parse error")
	}
}
