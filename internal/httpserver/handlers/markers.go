package handlers

import (
	"net/http"

	"github.com/markermap/markermap/internal/httpserver/deps"
	"github.com/markermap/markermap/internal/logger"
)

// Markers serves the current dataset as GeoJSON. The file is re-read per
// request so markers committed by apply runs show up without a restart.
func Markers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := d.Dataset.Load()
		if err != nil {
			d.Logger.Error("failed to load dataset", logger.Error(err))
			http.Error(w, "dataset unavailable", http.StatusInternalServerError)
			return
		}

		data, err := col.Encode()
		if err != nil {
			d.Logger.Error("failed to encode dataset", logger.Error(err))
			http.Error(w, "dataset unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(data)
	}
}
