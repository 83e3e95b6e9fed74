package analysis

import (
	"fmt"
	"sort"

	"github.com/crashlens/crashlens/internal/models"
)

// Bucket is one row of an aggregate table: a grouping key and its measure.
type Bucket struct {
	Key   string
	Value int
}

// KeyFunc extracts a grouping key from a record. The second return value is
// false when the record has no value for the key, which excludes it from the
// aggregate, so the bucket total always equals the number of records with a
// non-null key.
type KeyFunc func(models.Collision) (string, bool)

// CountBy groups records by key and counts. Buckets come back in first-seen
// key order so that downstream top-N ranking breaks ties stably.
func CountBy(records []models.Collision, key KeyFunc) []Bucket {
	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		k, ok := key(rec)
		if !ok {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	buckets := make([]Bucket, 0, len(order))
	for _, k := range order {
		buckets = append(buckets, Bucket{Key: k, Value: counts[k]})
	}
	return buckets
}

// SumBy groups records by key and sums the given measure.
func SumBy(records []models.Collision, key KeyFunc, measure func(models.Collision) int) []Bucket {
	sums := make(map[string]int)
	var order []string

	for _, rec := range records {
		k, ok := key(rec)
		if !ok {
			continue
		}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += measure(rec)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, k := range order {
		buckets = append(buckets, Bucket{Key: k, Value: sums[k]})
	}
	return buckets
}

// TopN returns the n largest buckets by value, descending. The sort is stable
// so ties keep their input order.
func TopN(buckets []Bucket, n int) []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// SortByKey orders buckets lexicographically by key, for axes with a natural
// order such as hours and months.
func SortByKey(buckets []Bucket) []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

// ByFactor keys records by the primary contributing factor.
func ByFactor(c models.Collision) (string, bool) { return nonEmpty(c.ContributingFactor1) }

// ByVehicleType keys records by the primary vehicle type code.
func ByVehicleType(c models.Collision) (string, bool) { return nonEmpty(c.VehicleType1) }

// ByBorough keys records by borough.
func ByBorough(c models.Collision) (string, bool) { return nonEmpty(c.Borough) }

// ByZip keys records by ZIP code.
func ByZip(c models.Collision) (string, bool) { return nonEmpty(c.ZipCode) }

// ByHour keys records by hour of day; records whose crash time failed to
// parse carry a null hour and are excluded.
func ByHour(c models.Collision) (string, bool) {
	if !c.HasTime {
		return "", false
	}
	return fmt.Sprintf("%02d", c.Hour), true
}

// ByMonth keys records by crash month ("YYYY-MM").
func ByMonth(c models.Collision) (string, bool) {
	if c.CrashDate.IsZero() {
		return "", false
	}
	return c.Month(), true
}

// VictimTotals sums injuries and deaths per victim class, in the fixed
// presentation order of the crash-type chart.
func VictimTotals(records []models.Collision) []Bucket {
	var pedInj, cycInj, motInj, pedKil, cycKil, motKil int
	for _, rec := range records {
		pedInj += rec.PedestriansInjured
		cycInj += rec.CyclistsInjured
		motInj += rec.MotoristsInjured
		pedKil += rec.PedestriansKilled
		cycKil += rec.CyclistsKilled
		motKil += rec.MotoristsKilled
	}
	return []Bucket{
		{Key: "Pedestrian Injuries", Value: pedInj},
		{Key: "Cyclist Injuries", Value: cycInj},
		{Key: "Motorist Injuries", Value: motInj},
		{Key: "Pedestrian Deaths", Value: pedKil},
		{Key: "Cyclist Deaths", Value: cycKil},
		{Key: "Motorist Deaths", Value: motKil},
	}
}

// ZipCasualtyTotals sums injured plus killed persons per ZIP code, the
// measure behind the top-ZIP ranking chart.
func ZipCasualtyTotals(records []models.Collision) []Bucket {
	return SumBy(records, ByZip, func(c models.Collision) int {
		return c.PersonsInjured + c.PersonsKilled
	})
}
