// Package formtext parses issue-form bodies into keyed field records.
//
// Issue forms render as markdown: one "### Heading" per field, followed by
// the submitted value (or the "_No response_" placeholder) until the next
// heading. Parsing is total: any string input yields a record, possibly empty.
package formtext

import (
	"regexp"
	"strings"
)

// Field is one parsed form section.
type Field struct {
	Raw     string // verbatim body between this heading and the next
	Value   string // body with placeholders, separators and checkbox markers stripped
	Checked bool   // true if any checkbox line in the raw body is checked
}

// Record maps a normalized heading to its parsed field.
type Record map[string]Field

var (
	headingRe    = regexp.MustCompile(`^###\s+(.+?)\s*$`)
	checkboxRe   = regexp.MustCompile(`^-\s*\[([ xX])\]\s*`)
	checkedRe    = regexp.MustCompile(`^-\s*\[[xX]\]`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]+`)
	noResponseRe = regexp.MustCompile(`(?i)^_?no response_?$`)
)

// Parse scans body and returns the record of all headed sections.
// Text before the first heading is discarded.
func Parse(body string) Record {
	rec := Record{}
	if body == "" {
		return rec
	}

	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")

	key := ""
	var section []string
	flush := func() {
		if key == "" {
			return
		}
		rec[key] = buildField(section)
		section = nil
	}

	for _, line := range lines {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			key = NormalizeKey(m[1])
			continue
		}
		if key != "" {
			section = append(section, line)
		}
	}
	flush()

	return rec
}

// NormalizeKey lowercases a heading and collapses every non-alphanumeric run
// into a single underscore: "Marker Id" -> "marker_id".
func NormalizeKey(heading string) string {
	key := nonAlnumRe.ReplaceAllString(strings.ToLower(heading), "_")
	return strings.Trim(key, "_")
}

func buildField(lines []string) Field {
	raw := strings.Join(lines, "\n")

	checked := false
	var cleaned []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" {
			continue
		}
		if noResponseRe.MatchString(trimmed) {
			continue
		}
		if checkedRe.MatchString(trimmed) {
			checked = true
		}
		cleaned = append(cleaned, checkboxRe.ReplaceAllString(trimmed, ""))
	}

	return Field{
		Raw:     raw,
		Value:   strings.TrimSpace(strings.Join(cleaned, "\n")),
		Checked: checked,
	}
}

// Value returns the cleaned value for the first key that is present with a
// non-empty cleaned value. The boolean reports whether such a key was found.
func (r Record) Value(keys ...string) (string, bool) {
	for _, k := range keys {
		if f, ok := r[k]; ok && f.Value != "" {
			return f.Value, true
		}
	}
	return "", false
}

// Checked reports whether any of the given keys is present with a checked box.
func (r Record) Checked(keys ...string) bool {
	for _, k := range keys {
		if f, ok := r[k]; ok && f.Checked {
			return true
		}
	}
	return false
}
