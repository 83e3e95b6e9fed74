package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `CRASH DATE,CRASH TIME,BOROUGH,ZIP CODE,LATITUDE,LONGITUDE,NUMBER OF PERSONS INJURED,NUMBER OF PERSONS KILLED,CONTRIBUTING FACTOR VEHICLE 1,VEHICLE TYPE CODE 1
01/15/2023,14:30,BROOKLYN,11201,40.695000,-73.985000,1,0,Driver Inattention/Distraction,Sedan
01/16/2023,9:05,QUEENS,11375,40.720000,-73.845000,0,1,Failure to Yield Right-of-Way,Taxi
01/17/2023,banana,,,,,0,0,Unspecified,Bike
01/18/2023,23:59,MANHATTAN,10001,40.750000,-73.995000,2,0,Following Too Closely,Bus
`

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(testCSV))
	require.NoError(t, err)

	t.Run("row and column counts", func(t *testing.T) {
		assert.Len(t, ds.Records, 4)
		assert.Equal(t, 4, ds.Frame.Nrow())
		assert.Equal(t, 10, len(ds.Columns))
		assert.Equal(t, "CRASH DATE", ds.Columns[0])
	})

	t.Run("typed fields", func(t *testing.T) {
		rec := ds.Records[0]
		assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), rec.CrashDate)
		assert.True(t, rec.HasTime)
		assert.Equal(t, 14, rec.Hour)
		assert.Equal(t, "BROOKLYN", rec.Borough)
		assert.Equal(t, "11201", rec.ZipCode)
		require.True(t, rec.HasCoordinates())
		assert.Equal(t, 40.695, *rec.Latitude)
		assert.Equal(t, -73.985, *rec.Longitude)
		assert.Equal(t, 1, rec.PersonsInjured)
	})

	t.Run("single digit hour", func(t *testing.T) {
		rec := ds.Records[1]
		assert.True(t, rec.HasTime)
		assert.Equal(t, 9, rec.Hour)
		assert.Equal(t, 1, rec.PersonsKilled)
	})

	t.Run("malformed time coerces to null hour", func(t *testing.T) {
		rec := ds.Records[2]
		assert.False(t, rec.HasTime)
		assert.Equal(t, 0, rec.Hour)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		rec := ds.Records[2]
		assert.Nil(t, rec.Latitude)
		assert.Nil(t, rec.Longitude)
		assert.False(t, rec.HasCoordinates())
	})
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("CRASH DATE,CRASH TIME\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})

	t.Run("round trip through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "collisions.csv")
		require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

		ds, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, ds.Records, 4)
	})
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hour    int
		hasTime bool
	}{
		{"afternoon", "14:30", 14, true},
		{"single digit", "4:05", 4, true},
		{"midnight", "0:00", 0, true},
		{"end of day", "23:59", 23, true},
		{"empty", "", 0, false},
		{"garbage", "banana", 0, false},
		{"hour out of range", "24:00", 0, false},
		{"missing minutes", "14", 0, false},
		{"garbage minutes", "14:xx", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, hasTime := parseHour(tt.input)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.hasTime, hasTime)
		})
	}
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC), parseDate("06/02/2023"))
	assert.True(t, parseDate("2023-06-02").IsZero())
	assert.True(t, parseDate("").IsZero())
}

func TestNormalizeZip(t *testing.T) {
	assert.Equal(t, "11201", normalizeZip("11201"))
	assert.Equal(t, "11201", normalizeZip("11201.0"))
	assert.Equal(t, "", normalizeZip(""))
}
