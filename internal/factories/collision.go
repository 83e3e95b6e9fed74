package factories

import (
	"math/rand"
	"time"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/jaswdr/faker"
)

// boroughCenters anchors synthetic coordinates to a plausible point per
// borough before jitter is applied.
var boroughCenters = map[string][2]float64{
	"BROOKLYN":      {40.650002, -73.949997},
	"QUEENS":        {40.742054, -73.769417},
	"MANHATTAN":     {40.776676, -73.971321},
	"BRONX":         {40.837048, -73.865433},
	"STATEN ISLAND": {40.579021, -74.151535},
}

var boroughZipPrefixes = map[string][]string{
	"BROOKLYN":      {"112"},
	"QUEENS":        {"113", "114"},
	"MANHATTAN":     {"100", "101"},
	"BRONX":         {"104"},
	"STATEN ISLAND": {"103"},
}

// CollisionFactory produces synthetic crash records with the real dataset's
// shape, including deliberately missing boroughs, times and coordinates so
// the profiler and map filters have something to chew on.
type CollisionFactory struct {
	fake  faker.Faker
	rng   *rand.Rand
	start time.Time
	end   time.Time
}

// NewCollisionFactory returns a deterministic factory: the same seed and date
// range generate the same sequence of records.
func NewCollisionFactory(seed int64, start, end time.Time) *CollisionFactory {
	return &CollisionFactory{
		fake:  faker.NewWithSeed(rand.NewSource(seed)),
		rng:   rand.New(rand.NewSource(seed)),
		start: start.Truncate(24 * time.Hour),
		end:   end.Truncate(24 * time.Hour),
	}
}

// Generate produces one synthetic collision record.
func (f *CollisionFactory) Generate() models.Collision {
	rec := models.Collision{
		CrashDate: f.randomDate(),
	}

	// ~2% of real records have an unparsable crash time
	if f.rng.Float64() >= 0.02 {
		rec.Hour = f.randomHour()
		rec.HasTime = true
	}

	// borough and ZIP are missing together in roughly a third of the data
	if f.rng.Float64() >= 0.35 {
		rec.Borough = models.Boroughs[f.rng.Intn(len(models.Boroughs))]
		rec.ZipCode = f.randomZip(rec.Borough)
	}

	// coordinates are present for most rows, missing for some
	if f.rng.Float64() >= 0.07 {
		lat, lon := f.randomCoordinates(rec.Borough)
		rec.Latitude = &lat
		rec.Longitude = &lon
	}

	rec.OnStreetName = f.fake.Address().StreetName()
	if f.rng.Float64() < 0.6 {
		rec.CrossStreetName = f.fake.Address().StreetName()
	}

	rec.ContributingFactor1 = pick(f.rng, models.DefaultContributingFactors)
	if f.rng.Float64() < 0.3 {
		rec.ContributingFactor2 = pick(f.rng, models.DefaultContributingFactors)
	}
	rec.VehicleType1 = pick(f.rng, models.DefaultVehicleTypes)
	if f.rng.Float64() < 0.5 {
		rec.VehicleType2 = pick(f.rng, models.DefaultVehicleTypes)
	}

	f.assignCasualties(&rec)
	return rec
}

// GenerateBatch produces n records.
func (f *CollisionFactory) GenerateBatch(n int) []models.Collision {
	out := make([]models.Collision, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Generate())
	}
	return out
}

func (f *CollisionFactory) randomDate() time.Time {
	days := int(f.end.Sub(f.start).Hours() / 24)
	if days <= 0 {
		return f.start
	}
	return f.start.AddDate(0, 0, f.rng.Intn(days+1))
}

// randomHour skews toward the afternoon rush the way the real distribution
// does.
func (f *CollisionFactory) randomHour() int {
	if f.rng.Float64() < 0.4 {
		return 13 + f.rng.Intn(6) // 13:00-18:59
	}
	return f.rng.Intn(24)
}

func (f *CollisionFactory) randomZip(borough string) string {
	prefixes, ok := boroughZipPrefixes[borough]
	if !ok {
		return ""
	}
	prefix := prefixes[f.rng.Intn(len(prefixes))]
	return prefix + twoDigits(f.rng)
}

func (f *CollisionFactory) randomCoordinates(borough string) (float64, float64) {
	center, ok := boroughCenters[borough]
	if !ok {
		center = [2]float64{40.730610, -73.935242}
	}
	lat := center[0] + (f.rng.Float64()-0.5)*0.08
	lon := center[1] + (f.rng.Float64()-0.5)*0.08
	return lat, lon
}

// assignCasualties draws injury and fatality counts skewed heavily toward
// zero and splits them across victim classes so per-class counts always sum
// to the person totals.
func (f *CollisionFactory) assignCasualties(rec *models.Collision) {
	injured := 0
	switch r := f.rng.Float64(); {
	case r < 0.75:
		injured = 0
	case r < 0.93:
		injured = 1
	case r < 0.99:
		injured = 2
	default:
		injured = 3 + f.rng.Intn(3)
	}

	killed := 0
	if f.rng.Float64() < 0.002 {
		killed = 1
	}

	rec.PersonsInjured = injured
	rec.PersonsKilled = killed

	for i := 0; i < injured; i++ {
		switch f.rng.Intn(10) {
		case 0, 1:
			rec.PedestriansInjured++
		case 2:
			rec.CyclistsInjured++
		default:
			rec.MotoristsInjured++
		}
	}
	for i := 0; i < killed; i++ {
		switch f.rng.Intn(10) {
		case 0, 1:
			rec.PedestriansKilled++
		case 2:
			rec.CyclistsKilled++
		default:
			rec.MotoristsKilled++
		}
	}
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func twoDigits(rng *rand.Rand) string {
	return string([]byte{byte('0' + rng.Intn(10)), byte('0' + rng.Intn(10))})
}
