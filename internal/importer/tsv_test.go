package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "markers.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestImport(t *testing.T) {
	path := writeTSV(t,
		"id\ttitle\tlatitude\tlongitude\tcategory\n"+
			"m-2\tSecond\t10.5\t20.5\tfood\n"+
			"m-1\tFirst\t-1\t-2\t\n")

	col, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(col.Features) != 2 {
		t.Fatalf("imported %d features, want 2", len(col.Features))
	}

	// Sorted by id regardless of row order.
	if col.Features[0].Properties.ID != "m-1" || col.Features[1].Properties.ID != "m-2" {
		t.Errorf("ids = %q, %q, want m-1, m-2",
			col.Features[0].Properties.ID, col.Features[1].Properties.ID)
	}

	second := col.Features[1]
	if second.Properties.Title != "Second" {
		t.Errorf("title = %q, want %q", second.Properties.Title, "Second")
	}
	if second.Lng() != 20.5 || second.Lat() != 10.5 {
		t.Errorf("coordinates = [%v, %v], want [20.5, 10.5]", second.Lng(), second.Lat())
	}
	if second.Properties.Category != "food" {
		t.Errorf("category = %q, want %q", second.Properties.Category, "food")
	}
	if second.Properties.UpdatedAt == "" {
		t.Error("updated_at not set on imported feature")
	}
}

func TestImportHeaderAliases(t *testing.T) {
	path := writeTSV(t,
		"ID\tName\tLat\tLng\tLocation\n"+
			"m-1\tCafe\t1\t2\tdowntown\n")

	col, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	f := col.Features[0]
	if f.Properties.Title != "Cafe" {
		t.Errorf("title = %q, want mapped from Name column", f.Properties.Title)
	}
	if f.Properties.Description != "downtown" {
		t.Errorf("description = %q, want mapped from Location column", f.Properties.Description)
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing id column",
			content: "title\tlatitude\tlongitude\nCafe\t1\t2\n",
			want:    "no id column",
		},
		{
			name:    "missing coordinates column",
			content: "id\ttitle\nm-1\tCafe\n",
			want:    "no latitude column",
		},
		{
			name:    "empty id cell",
			content: "id\ttitle\tlatitude\tlongitude\n\tCafe\t1\t2\n",
			want:    "missing id",
		},
		{
			name:    "empty title cell",
			content: "id\ttitle\tlatitude\tlongitude\nm-1\t\t1\t2\n",
			want:    "missing title",
		},
		{
			name:    "non-numeric latitude",
			content: "id\ttitle\tlatitude\tlongitude\nm-1\tCafe\tnorth\t2\n",
			want:    "not a number",
		},
		{
			name:    "duplicate ids",
			content: "id\ttitle\tlatitude\tlongitude\nm-1\tCafe\t1\t2\nm-1\tBar\t3\t4\n",
			want:    "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(writeTSV(t, tt.content))
			if err == nil {
				t.Fatal("Import() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}
