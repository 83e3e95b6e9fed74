package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Severity is the derived label for a collision based on its casualty counts.
type Severity string

const (
	SeverityFatal  Severity = "fatal"
	SeverityInjury Severity = "injury"
	SeverityNone   Severity = "none"
)

// Collision is one crash record from the NYC Motor Vehicle Collisions dataset.
// The record is immutable once loaded.
type Collision struct {
	CrashDate time.Time `json:"crash_date"`
	Hour      int       `json:"hour"`
	HasTime   bool      `json:"has_time"`

	Borough         string `json:"borough"`
	ZipCode         string `json:"zip_code"`
	OnStreetName    string `json:"on_street_name"`
	CrossStreetName string `json:"cross_street_name"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	PersonsInjured     int `json:"persons_injured"`
	PersonsKilled      int `json:"persons_killed"`
	PedestriansInjured int `json:"pedestrians_injured"`
	PedestriansKilled  int `json:"pedestrians_killed"`
	CyclistsInjured    int `json:"cyclists_injured"`
	CyclistsKilled     int `json:"cyclists_killed"`
	MotoristsInjured   int `json:"motorists_injured"`
	MotoristsKilled    int `json:"motorists_killed"`

	ContributingFactor1 string `json:"contributing_factor_1"`
	ContributingFactor2 string `json:"contributing_factor_2"`
	VehicleType1        string `json:"vehicle_type_1"`
	VehicleType2        string `json:"vehicle_type_2"`
}

// HasCoordinates reports whether both latitude and longitude are present.
// Records without coordinates are excluded from map rendering only.
func (c Collision) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// SeverityClass partitions every record into exactly one of fatal, injury or
// none: a fatality count above zero wins, then an injury count above zero.
func (c Collision) SeverityClass() Severity {
	switch {
	case c.PersonsKilled > 0:
		return SeverityFatal
	case c.PersonsInjured > 0:
		return SeverityInjury
	default:
		return SeverityNone
	}
}

// ID produces a deterministic short identifier from the record's key fields,
// so re-exporting the same dataset yields the same IDs.
func (c Collision) ID() string {
	var lat, lon float64
	if c.HasCoordinates() {
		lat, lon = *c.Latitude, *c.Longitude
	}
	input := fmt.Sprintf("%s|%d|%s|%s|%.6f|%.6f|%d|%d",
		c.CrashDate.Format("2006-01-02"), c.Hour, c.Borough, c.ZipCode,
		lat, lon, c.PersonsInjured, c.PersonsKilled)
	hash := sha256.Sum256([]byte(input))
	return "crash-" + hex.EncodeToString(hash[:8])
}

// Month returns the record's crash month as a sortable "YYYY-MM" key.
func (c Collision) Month() string {
	return c.CrashDate.Format("2006-01")
}
