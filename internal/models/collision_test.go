package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeverityClass(t *testing.T) {
	tests := []struct {
		name     string
		injured  int
		killed   int
		expected Severity
	}{
		{"fatality wins", 3, 1, SeverityFatal},
		{"killed only", 0, 2, SeverityFatal},
		{"injury only", 1, 0, SeverityInjury},
		{"no casualties", 0, 0, SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collision{PersonsInjured: tt.injured, PersonsKilled: tt.killed}
			assert.Equal(t, tt.expected, c.SeverityClass())
		})
	}
}

func TestHasCoordinates(t *testing.T) {
	lat, lon := 40.7, -73.9

	assert.True(t, Collision{Latitude: &lat, Longitude: &lon}.HasCoordinates())
	assert.False(t, Collision{Latitude: &lat}.HasCoordinates())
	assert.False(t, Collision{Longitude: &lon}.HasCoordinates())
	assert.False(t, Collision{}.HasCoordinates())
}

func TestID(t *testing.T) {
	lat, lon := 40.695, -73.985
	c := Collision{
		CrashDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Hour:      14,
		HasTime:   true,
		Borough:   "BROOKLYN",
		ZipCode:   "11201",
		Latitude:  &lat,
		Longitude: &lon,
	}

	id := c.ID()
	assert.Equal(t, id, c.ID(), "same record yields the same ID")
	assert.Regexp(t, `^crash-[0-9a-f]{16}$`, id)

	other := c
	other.Hour = 15
	assert.NotEqual(t, id, other.ID())
}

func TestMonth(t *testing.T) {
	c := Collision{CrashDate: time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2023-03", c.Month())
}
