package geomap

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/crashlens/crashlens/internal/models"
)

// Builder renders standalone Leaflet HTML map artifacts centered on a fixed
// city coordinate.
type Builder struct {
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	HeatRadius  int
	HeatMaxZoom int
}

// NewBuilder constructs a Builder from the map settings in config.
func NewBuilder(cfg *models.Config) *Builder {
	return &Builder{
		CenterLat:   cfg.MapCenterLat,
		CenterLon:   cfg.MapCenterLon,
		Zoom:        cfg.MapZoom,
		HeatRadius:  cfg.HeatRadius,
		HeatMaxZoom: cfg.HeatMaxZoom,
	}
}

type mapPage struct {
	Title       string
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	HeatRadius  int
	HeatMaxZoom int
	Data        template.JS
}

// WriteHeatmap renders every record as a density point on a tile basemap.
func (b *Builder) WriteHeatmap(w io.Writer, records []models.Collision) error {
	data, err := heatPoints(records)
	if err != nil {
		return err
	}
	return heatmapTmpl.Execute(w, b.page("Crash Density Heatmap", data))
}

// WriteSeverityMap renders records as severity-coded markers: red triangles
// for fatal crashes, orange circles for injury crashes, green squares
// otherwise.
func (b *Builder) WriteSeverityMap(w io.Writer, records []models.Collision) error {
	data, err := json.Marshal(featureCollection(records, true))
	if err != nil {
		return fmt.Errorf("marshal severity features: %w", err)
	}
	return severityTmpl.Execute(w, b.page("Crash Severity Map", data))
}

// WriteClusterMap renders records as popup-labeled markers grouped into
// proximity clusters.
func (b *Builder) WriteClusterMap(w io.Writer, records []models.Collision) error {
	data, err := json.Marshal(featureCollection(records, false))
	if err != nil {
		return fmt.Errorf("marshal cluster features: %w", err)
	}
	return clusterTmpl.Execute(w, b.page("Crash Cluster Map", data))
}

func (b *Builder) page(title string, data []byte) mapPage {
	return mapPage{
		Title:       title,
		CenterLat:   b.CenterLat,
		CenterLon:   b.CenterLon,
		Zoom:        b.Zoom,
		HeatRadius:  b.HeatRadius,
		HeatMaxZoom: b.HeatMaxZoom,
		Data:        template.JS(data),
	}
}

var (
	heatmapTmpl  = template.Must(template.New("heatmap").Parse(headTmpl + heatmapBody))
	severityTmpl = template.Must(template.New("severity").Parse(headTmpl + severityBody))
	clusterTmpl  = template.Must(template.New("cluster").Parse(headTmpl + clusterBody))
)

const headTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body, #map { height: 100%; margin: 0; }
.marker-fatal {
  width: 0; height: 0;
  border-left: 6px solid transparent;
  border-right: 6px solid transparent;
  border-bottom: 11px solid red;
}
.marker-injury {
  width: 10px; height: 10px;
  border-radius: 50%;
  background: orange;
}
.marker-none {
  width: 10px; height: 10px;
  background: green;
}
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
</script>
`

const heatmapBody = `<script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>
<script>
var heatData = {{.Data}};
L.heatLayer(heatData, {radius: {{.HeatRadius}}, maxZoom: {{.HeatMaxZoom}}}).addTo(map);
</script>
</body>
</html>
`

const severityBody = `<script>
var crashes = {{.Data}};
function severityIcon(severity) {
  return L.divIcon({className: 'marker-' + severity, iconSize: [12, 12]});
}
L.geoJSON(crashes, {
  pointToLayer: function (feature, latlng) {
    return L.marker(latlng, {icon: severityIcon(feature.properties.severity)});
  }
}).addTo(map);
</script>
</body>
</html>
`

const clusterBody = `<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css"/>
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css"/>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<script>
var crashes = {{.Data}};
var clusters = L.markerClusterGroup();
L.geoJSON(crashes, {
  onEachFeature: function (feature, layer) {
    layer.bindPopup(feature.properties.popup);
  }
}).eachLayer(function (layer) {
  clusters.addLayer(layer);
});
map.addLayer(clusters);
</script>
</body>
</html>
`
