package handlers

import (
	"html/template"
	"net/http"

	"github.com/markermap/markermap/internal/httpserver/deps"
	"github.com/markermap/markermap/internal/logger"
)

var mapPageTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
  <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
  <style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
  <div id="map"></div>
  <script>
    const map = L.map('map').setView([{{.Center.Lat}}, {{.Center.Lng}}], {{.Zoom}});
    L.tileLayer('{{.TileURL}}', { attribution: '{{.Attribution}}' }).addTo(map);

    fetch('/api/markers')
      .then(resp => resp.json())
      .then(data => {
        for (const feature of data.features) {
          const [lng, lat] = feature.geometry.coordinates;
          const props = feature.properties;
          let popup = '<strong>' + props.title + '</strong>';
          if (props.description) popup += '<br>' + props.description;
          if (props.link) popup += '<br><a href="' + props.link + '">' + props.link + '</a>';
          const marker = L.marker([lat, lng]).addTo(map).bindPopup(popup);
          if (props.focus_on_load) {
            map.setView([lat, lng], Math.max(map.getZoom(), 12));
            marker.openPopup();
          }
        }
      });
  </script>
</body>
</html>
`))

// MapPage serves the interactive map shell around the dataset endpoint.
func MapPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := mapPageTmpl.Execute(w, d.MapConfig); err != nil {
			d.Logger.Error("failed to render map page", logger.Error(err))
		}
	}
}
