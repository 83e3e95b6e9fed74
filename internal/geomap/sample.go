package geomap

import (
	"math/rand"

	"github.com/crashlens/crashlens/internal/models"
)

// CoordinateValid returns the records that carry both latitude and longitude.
// Rows missing either are dropped for map rendering only.
func CoordinateValid(records []models.Collision) []models.Collision {
	out := make([]models.Collision, 0, len(records))
	for _, rec := range records {
		if rec.HasCoordinates() {
			out = append(out, rec)
		}
	}
	return out
}

// Sample draws n records without replacement using a seeded source, so the
// same seed over the same input reproduces the same sample. When n covers the
// whole input the input order is preserved.
func Sample(records []models.Collision, n int, seed int64) []models.Collision {
	out := make([]models.Collision, len(records))
	copy(out, records)
	if n >= len(out) {
		return out
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n]
}
