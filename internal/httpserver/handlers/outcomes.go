package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/markermap/markermap/internal/httpserver/deps"
	"github.com/markermap/markermap/internal/logger"
	redisstore "github.com/markermap/markermap/internal/store/redis"
)

type outcomesResponse struct {
	Enabled  bool                      `json:"enabled"`
	Outcomes []redisstore.HistoryEntry `json:"outcomes"`
}

// Outcomes serves the recent mutation history. With redis disabled it
// returns an empty, explicitly disabled list rather than an error.
func Outcomes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		resp := outcomesResponse{Outcomes: []redisstore.HistoryEntry{}}
		if d.History != nil {
			resp.Enabled = true

			n := d.HistorySize
			if q := r.URL.Query().Get("limit"); q != "" {
				if parsed, err := strconv.Atoi(q); err == nil && parsed > 0 {
					n = parsed
				}
			}

			entries, err := d.History.Recent(r.Context(), n)
			if err != nil {
				d.Logger.Error("failed to read outcome history", logger.Error(err))
				http.Error(w, "history unavailable", http.StatusInternalServerError)
				return
			}
			resp.Outcomes = entries
		}

		_ = json.NewEncoder(w).Encode(resp)
	}
}
