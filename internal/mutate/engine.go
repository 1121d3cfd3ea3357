// Package mutate classifies marker requests and applies add/update/delete
// mutations to an in-memory feature collection. The engine never touches
// disk; persistence belongs to the pipeline.
package mutate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markermap/markermap/internal/event"
	"github.com/markermap/markermap/internal/formtext"
	"github.com/markermap/markermap/internal/geojson"
	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/validate"
)

// Engine applies one classified request against a collection.
type Engine struct {
	log logger.Logger

	// Injectable for deterministic tests.
	now      func() time.Time
	randomID func() string
}

// NewEngine creates an engine with real time and id sources.
func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		log:      log,
		now:      time.Now,
		randomID: func() string { return uuid.NewString()[:8] },
	}
}

// Apply classifies req and runs the matching mutation. The collection is
// modified in place only on a success outcome.
func (e *Engine) Apply(req Request, col *geojson.FeatureCollection) event.Outcome {
	op := Classify(req.Labels)
	if op == OpUnknown {
		return event.Failure("no recognized operation label (want %s, %s or %s)",
			LabelAdd, LabelUpdate, LabelDelete)
	}

	e.log.Info("applying mutation",
		logger.String("op", op.String()),
		logger.Int("request", req.Number))

	rec := formtext.Parse(req.Body)

	switch op {
	case OpAdd:
		return e.applyAdd(req, rec, col)
	case OpUpdate:
		return e.applyUpdate(rec, col)
	default:
		return e.applyDelete(rec, col)
	}
}

func (e *Engine) applyAdd(req Request, rec formtext.Record, col *geojson.FeatureCollection) event.Outcome {
	title, ok := rec.Value("title")
	if !ok {
		return event.Failure("missing required field: title")
	}

	lat, ok, err := latitude(rec)
	if err != nil {
		return event.Failure("%v", err)
	}
	if !ok {
		return event.Failure("missing required field: latitude")
	}
	lng, ok, err := longitude(rec)
	if err != nil {
		return event.Failure("%v", err)
	}
	if !ok {
		return event.Failure("missing required field: longitude")
	}

	props := geojson.Properties{
		Title:     title,
		UpdatedAt: e.timestamp(),
	}
	if outcome, ok := e.optionalProps(rec, &props); !ok {
		return outcome
	}

	id, ok := rec.Value(idKeys...)
	if !ok {
		id = e.generateID(req.Number)
	}
	if col.Has(id) {
		return event.Failure("marker %q already exists", id)
	}
	props.ID = id

	col.Append(geojson.NewFeature(props, lng, lat))
	return event.Success("added marker %q (%s)", id, title)
}

func (e *Engine) applyUpdate(rec formtext.Record, col *geojson.FeatureCollection) event.Outcome {
	id, ok := rec.Value(idKeys...)
	if !ok {
		return event.Failure("missing required field: marker id")
	}
	feature := col.Find(id)
	if feature == nil {
		return event.Failure("no marker with id %q", id)
	}

	// Stage every change on a copy first so a failing field leaves the
	// stored feature untouched.
	props := feature.Properties
	if v, ok := rec.Value("title"); ok {
		props.Title = v
	}
	if outcome, ok := e.optionalProps(rec, &props); !ok {
		return outcome
	}
	if rec.Checked(focusKeys...) {
		props.FocusOnLoad = true
	}

	lat, lng := feature.Lat(), feature.Lng()
	latVal, latOK, err := latitude(rec)
	if err != nil {
		return event.Failure("%v", err)
	}
	lngVal, lngOK, err := longitude(rec)
	if err != nil {
		return event.Failure("%v", err)
	}
	if latOK {
		lat = latVal
	}
	if lngOK {
		lng = lngVal
	}

	props.UpdatedAt = e.timestamp()
	feature.Properties = props
	if latOK || lngOK {
		feature.SetCoordinates(lng, lat)
	}
	col.Sort()

	return event.Success("updated marker %q", id)
}

func (e *Engine) applyDelete(rec formtext.Record, col *geojson.FeatureCollection) event.Outcome {
	id, ok := rec.Value(idKeys...)
	if !ok {
		return event.Failure("missing required field: marker id")
	}
	feature := col.Find(id)
	if feature == nil {
		return event.Failure("no marker with id %q", id)
	}
	if !confirmed(rec) {
		return event.Failure("deleting marker %q requires explicit confirmation", id)
	}

	title := feature.Properties.Title
	col.Remove(id)
	return event.Success("deleted marker %q (%s)", id, title)
}

// optionalProps copies the optional request fields into props, rejecting
// malformed URLs. Absent fields leave the prior value untouched.
func (e *Engine) optionalProps(rec formtext.Record, props *geojson.Properties) (event.Outcome, bool) {
	if v, ok := rec.Value("description"); ok {
		props.Description = v
	}
	if v, ok := rec.Value("category"); ok {
		props.Category = v
	}
	if v, ok := rec.Value("link"); ok {
		if !validate.IsHTTPURL(v) {
			return event.Failure("link %q is not a valid http(s) URL", v), false
		}
		props.Link = v
	}
	if v, ok := rec.Value("icon"); ok {
		if v != geojson.IconDefault && !validate.IsHTTPURL(v) {
			return event.Failure("icon %q must be %q or a valid http(s) URL", v, geojson.IconDefault), false
		}
		props.Icon = v
	}
	return event.Outcome{}, true
}

// generateID builds a dated marker id from the request number, or from a
// random suffix when the request carries no identifier.
func (e *Engine) generateID(number int) string {
	date := e.now().UTC().Format("20060102")
	if number > 0 {
		return fmt.Sprintf("marker-%s-%05d", date, number)
	}
	return fmt.Sprintf("marker-%s-%s", date, e.randomID())
}

func (e *Engine) timestamp() string {
	return e.now().UTC().Format(time.RFC3339)
}
