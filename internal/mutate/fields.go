package mutate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markermap/markermap/internal/formtext"
)

// Alternate heading spellings accepted per field. Issue-form templates have
// drifted over time, so both the long and short coordinate names are live.
var (
	idKeys      = []string{"marker_id", "id"}
	latKeys     = []string{"latitude", "lat"}
	lngKeys     = []string{"longitude", "lng"}
	confirmKeys = []string{"confirm_deletion", "confirm_delete", "confirmation", "confirm"}
	focusKeys   = []string{"focus_on_load", "focus_map_on_this_marker", "focus"}
)

// affirmatives are the textual confirmation phrases accepted in place of a
// checked confirmation box.
var affirmatives = map[string]bool{
	"yes":       true,
	"y":         true,
	"confirm":   true,
	"confirmed": true,
	"delete":    true,
}

// coordinate parses one axis from the record. ok reports whether the axis
// was supplied at all; err is set when it was supplied but unusable.
func coordinate(rec formtext.Record, name string, keys []string, min, max float64) (val float64, ok bool, err error) {
	s, ok := rec.Value(keys...)
	if !ok {
		return 0, false, nil
	}
	val, parseErr := strconv.ParseFloat(s, 64)
	if parseErr != nil {
		return 0, true, fmt.Errorf("%s %q is not a number", name, s)
	}
	if val < min || val > max {
		return 0, true, fmt.Errorf("%s %v out of range [%v, %v]", name, val, min, max)
	}
	return val, true, nil
}

func latitude(rec formtext.Record) (float64, bool, error) {
	return coordinate(rec, "latitude", latKeys, -90, 90)
}

func longitude(rec formtext.Record) (float64, bool, error) {
	return coordinate(rec, "longitude", lngKeys, -180, 180)
}

// confirmed reports whether the record carries an explicit affirmative
// confirmation: a checked confirmation box, or a recognized phrase in a
// confirmation field.
func confirmed(rec formtext.Record) bool {
	if rec.Checked(confirmKeys...) {
		return true
	}
	if v, ok := rec.Value(confirmKeys...); ok {
		return affirmatives[strings.ToLower(strings.TrimSpace(v))]
	}
	return false
}
