package geomap

import (
	"encoding/json"
	"fmt"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// featureCollection converts records into a GeoJSON FeatureCollection for
// embedding into a map page. Callers must pass coordinate-valid records.
func featureCollection(records []models.Collision, withSeverity bool) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, rec := range records {
		lat, lon := *rec.Latitude, *rec.Longitude
		f := geojson.NewFeature(orb.Point{lon, lat})
		f.Properties["popup"] = fmt.Sprintf("Lat: %.6f, Lon: %.6f", lat, lon)
		if withSeverity {
			f.Properties["severity"] = string(rec.SeverityClass())
		}
		fc.Append(f)
	}
	return fc
}

// heatPoints flattens records into the [lat, lon] pairs leaflet.heat expects.
func heatPoints(records []models.Collision) ([]byte, error) {
	points := make([][2]float64, 0, len(records))
	for _, rec := range records {
		points = append(points, [2]float64{*rec.Latitude, *rec.Longitude})
	}
	data, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("marshal heat points: %w", err)
	}
	return data, nil
}
