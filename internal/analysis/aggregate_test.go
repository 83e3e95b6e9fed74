package analysis

import (
	"testing"
	"time"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountBy(t *testing.T) {
	records := []models.Collision{
		{Borough: "BROOKLYN"},
		{Borough: "QUEENS"},
		{Borough: "BROOKLYN"},
		{Borough: ""},
	}

	buckets := CountBy(records, ByBorough)

	t.Run("null keys excluded", func(t *testing.T) {
		total := 0
		for _, b := range buckets {
			total += b.Value
		}
		assert.Equal(t, 3, total, "total must equal records with non-null key")
	})

	t.Run("first seen order", func(t *testing.T) {
		require.Len(t, buckets, 2)
		assert.Equal(t, Bucket{Key: "BROOKLYN", Value: 2}, buckets[0])
		assert.Equal(t, Bucket{Key: "QUEENS", Value: 1}, buckets[1])
	})
}

func TestSumBy(t *testing.T) {
	records := []models.Collision{
		{ZipCode: "11201", PersonsInjured: 2, PersonsKilled: 1},
		{ZipCode: "11201", PersonsInjured: 1},
		{ZipCode: "10001", PersonsInjured: 5},
		{PersonsInjured: 9}, // no ZIP, excluded
	}

	buckets := ZipCasualtyTotals(records)
	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Key: "11201", Value: 4}, buckets[0])
	assert.Equal(t, Bucket{Key: "10001", Value: 5}, buckets[1])
}

func TestTopN(t *testing.T) {
	buckets := []Bucket{
		{Key: "a", Value: 1},
		{Key: "b", Value: 5},
		{Key: "c", Value: 5},
		{Key: "d", Value: 3},
	}

	top := TopN(buckets, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].Key, "ties keep input order")
	assert.Equal(t, "c", top[1].Key)
	assert.Equal(t, "d", top[2].Key)

	t.Run("n larger than input", func(t *testing.T) {
		assert.Len(t, TopN(buckets, 10), 4)
	})

	t.Run("input untouched", func(t *testing.T) {
		assert.Equal(t, "a", buckets[0].Key)
	})
}

func TestByHour(t *testing.T) {
	records := []models.Collision{
		{Hour: 8, HasTime: true},
		{Hour: 8, HasTime: true},
		{Hour: 17, HasTime: true},
		{Hour: 0, HasTime: false}, // unparsable crash time
	}

	buckets := SortByKey(CountBy(records, ByHour))
	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Key: "08", Value: 2}, buckets[0])
	assert.Equal(t, Bucket{Key: "17", Value: 1}, buckets[1])
}

func TestByMonth(t *testing.T) {
	records := []models.Collision{
		{CrashDate: day(2023, time.January, 15)},
		{CrashDate: day(2023, time.January, 20)},
		{CrashDate: day(2023, time.March, 1)},
		{}, // unparsable crash date
	}

	buckets := SortByKey(CountBy(records, ByMonth))
	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Key: "2023-01", Value: 2}, buckets[0])
	assert.Equal(t, Bucket{Key: "2023-03", Value: 1}, buckets[1])
}

func TestVictimTotals(t *testing.T) {
	records := []models.Collision{
		{PedestriansInjured: 2, MotoristsKilled: 1},
		{CyclistsInjured: 1, PedestriansInjured: 1},
		{MotoristsInjured: 4, CyclistsKilled: 1},
	}

	totals := VictimTotals(records)
	require.Len(t, totals, 6)
	assert.Equal(t, Bucket{Key: "Pedestrian Injuries", Value: 3}, totals[0])
	assert.Equal(t, Bucket{Key: "Cyclist Injuries", Value: 1}, totals[1])
	assert.Equal(t, Bucket{Key: "Motorist Injuries", Value: 4}, totals[2])
	assert.Equal(t, Bucket{Key: "Pedestrian Deaths", Value: 0}, totals[3])
	assert.Equal(t, Bucket{Key: "Cyclist Deaths", Value: 1}, totals[4])
	assert.Equal(t, Bucket{Key: "Motorist Deaths", Value: 1}, totals[5])
}

func TestDailyCounts(t *testing.T) {
	records := []models.Collision{
		{CrashDate: day(2023, time.May, 1)},
		{CrashDate: day(2023, time.May, 1)},
		{CrashDate: day(2023, time.May, 4)},
		{}, // excluded
	}

	s := DailyCounts(records)

	require.Len(t, s.Dates, 4, "calendar gaps are filled")
	assert.Equal(t, day(2023, time.May, 1), s.Dates[0])
	assert.Equal(t, day(2023, time.May, 4), s.Dates[3])
	assert.Equal(t, []float64{2, 0, 0, 1}, s.Values)
}

func TestMonthlySeries(t *testing.T) {
	buckets := []Bucket{
		{Key: "2023-03", Value: 7},
		{Key: "2023-01", Value: 3},
	}

	dates, values := MonthlySeries(buckets)
	require.Len(t, dates, 2)
	assert.Equal(t, day(2023, time.January, 1), dates[0])
	assert.Equal(t, []float64{3, 7}, values)
}
