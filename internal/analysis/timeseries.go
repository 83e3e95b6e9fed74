package analysis

import (
	"sort"
	"time"

	"github.com/crashlens/crashlens/internal/models"
)

// DailySeries is a date-indexed series of daily crash counts.
type DailySeries struct {
	Dates  []time.Time
	Values []float64
}

// DailyCounts builds the daily crash count series, sorted by date. Calendar
// gaps between the first and last crash date are filled with zero-count days
// so the fixed-period decomposition stays calendar aligned. Records with an
// unparsable crash date are excluded.
func DailyCounts(records []models.Collision) DailySeries {
	counts := make(map[time.Time]float64)
	for _, rec := range records {
		if rec.CrashDate.IsZero() {
			continue
		}
		day := rec.CrashDate.Truncate(24 * time.Hour)
		counts[day]++
	}
	if len(counts) == 0 {
		return DailySeries{}
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	first, last := days[0], days[len(days)-1]
	var out DailySeries
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		out.Dates = append(out.Dates, day)
		out.Values = append(out.Values, counts[day])
	}
	return out
}

// MonthlySeries converts month buckets ("YYYY-MM" keys) into a time axis for
// the monthly trend chart.
func MonthlySeries(buckets []Bucket) ([]time.Time, []float64) {
	sorted := SortByKey(buckets)
	dates := make([]time.Time, 0, len(sorted))
	values := make([]float64, 0, len(sorted))
	for _, b := range sorted {
		t, err := time.Parse("2006-01", b.Key)
		if err != nil {
			continue
		}
		dates = append(dates, t)
		values = append(values, float64(b.Value))
	}
	return dates, values
}
