package geomap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coordRecord(lat, lon float64, injured, killed int) models.Collision {
	return models.Collision{
		Latitude:       &lat,
		Longitude:      &lon,
		PersonsInjured: injured,
		PersonsKilled:  killed,
	}
}

func testBuilder() *Builder {
	return &Builder{
		CenterLat:   40.730610,
		CenterLon:   -73.935242,
		Zoom:        10,
		HeatRadius:  8,
		HeatMaxZoom: 13,
	}
}

func TestCoordinateValid(t *testing.T) {
	lat := 40.7
	records := []models.Collision{
		coordRecord(40.7, -73.9, 0, 0),
		{Latitude: &lat}, // longitude missing
		{},
	}

	valid := CoordinateValid(records)
	assert.Len(t, valid, 1)
}

func TestSample(t *testing.T) {
	records := make([]models.Collision, 100)
	for i := range records {
		records[i] = coordRecord(40.0+float64(i)*0.01, -74.0, 0, 0)
	}

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := Sample(records, 30, 42)
		b := Sample(records, 30, 42)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a := Sample(records, 30, 42)
		b := Sample(records, 30, 43)
		assert.NotEqual(t, a, b)
	})

	t.Run("sample size", func(t *testing.T) {
		assert.Len(t, Sample(records, 30, 42), 30)
	})

	t.Run("n covering input returns everything", func(t *testing.T) {
		all := Sample(records, 500, 42)
		assert.Equal(t, records, all)
	})

	t.Run("input untouched", func(t *testing.T) {
		snapshot := make([]models.Collision, len(records))
		copy(snapshot, records)
		Sample(records, 30, 42)
		assert.Equal(t, snapshot, records)
	})
}

func TestWriteHeatmap(t *testing.T) {
	records := []models.Collision{
		coordRecord(40.695, -73.985, 0, 0),
		coordRecord(40.750, -73.995, 1, 0),
	}

	var buf bytes.Buffer
	require.NoError(t, testBuilder().WriteHeatmap(&buf, records))

	html := buf.String()
	assert.Contains(t, html, "L.heatLayer")
	assert.Contains(t, html, "radius: 8")
	assert.Contains(t, html, "maxZoom: 13")
	assert.Contains(t, html, "40.695")
	assert.Contains(t, html, "-73.995")
}

func TestWriteSeverityMap(t *testing.T) {
	// 2 fatal, 3 injury, 5 none; all coordinate-valid
	var records []models.Collision
	for i := 0; i < 2; i++ {
		records = append(records, coordRecord(40.7, -73.9, 0, 1))
	}
	for i := 0; i < 3; i++ {
		records = append(records, coordRecord(40.7, -73.9, 1, 0))
	}
	for i := 0; i < 5; i++ {
		records = append(records, coordRecord(40.7, -73.9, 0, 0))
	}

	var buf bytes.Buffer
	require.NoError(t, testBuilder().WriteSeverityMap(&buf, records))

	html := buf.String()
	assert.Equal(t, 2, strings.Count(html, `"severity":"fatal"`))
	assert.Equal(t, 3, strings.Count(html, `"severity":"injury"`))
	assert.Equal(t, 5, strings.Count(html, `"severity":"none"`))
	assert.Contains(t, html, "marker-fatal")
	assert.Contains(t, html, "marker-injury")
	assert.Contains(t, html, "marker-none")
}

func TestWriteClusterMap(t *testing.T) {
	records := []models.Collision{
		coordRecord(40.695, -73.985, 0, 0),
		coordRecord(40.750, -73.995, 0, 0),
		coordRecord(40.720, -73.845, 0, 0),
	}

	var buf bytes.Buffer
	require.NoError(t, testBuilder().WriteClusterMap(&buf, records))

	html := buf.String()
	assert.Contains(t, html, "markerClusterGroup")
	assert.Equal(t, 3, strings.Count(html, `"popup"`))
	assert.Contains(t, html, "Lat: 40.695000, Lon: -73.985000")
}

func TestMapCenterAndZoom(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testBuilder().WriteHeatmap(&buf, nil))

	html := buf.String()
	assert.Contains(t, html, "40.73061")
	assert.Contains(t, html, "-73.935242")
	assert.Contains(t, html, "setView")
}
