package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset holds the loaded collision table in two shapes: a gota frame for
// column-wise profiling and typed records for aggregation and mapping. Both
// are read-only for the duration of the run.
type Dataset struct {
	Frame   dataframe.DataFrame
	Records []models.Collision
	Columns []string
}

// Load reads a collisions CSV from disk. A missing or unparsable file is a
// fatal condition for the pipeline; the error propagates to the caller.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// Read parses a collisions CSV from r. The file is parsed once; the same raw
// rows back both the typed records and the profiling frame.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("build frame: %w", df.Err)
	}

	header := rows[0]
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	records := make([]models.Collision, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row, idx))
	}

	return &Dataset{Frame: df, Records: records, Columns: header}, nil
}

func recordFromRow(row []string, idx map[string]int) models.Collision {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	hour, hasTime := parseHour(field(models.ColCrashTime))

	return models.Collision{
		CrashDate:           parseDate(field(models.ColCrashDate)),
		Hour:                hour,
		HasTime:             hasTime,
		Borough:             field(models.ColBorough),
		ZipCode:             normalizeZip(field(models.ColZipCode)),
		OnStreetName:        field(models.ColOnStreetName),
		CrossStreetName:     field(models.ColCrossStreetName),
		Latitude:            parseFloatPtr(field(models.ColLatitude)),
		Longitude:           parseFloatPtr(field(models.ColLongitude)),
		PersonsInjured:      parseIntOrZero(field(models.ColPersonsInjured)),
		PersonsKilled:       parseIntOrZero(field(models.ColPersonsKilled)),
		PedestriansInjured:  parseIntOrZero(field(models.ColPedestriansInjured)),
		PedestriansKilled:   parseIntOrZero(field(models.ColPedestriansKilled)),
		CyclistsInjured:     parseIntOrZero(field(models.ColCyclistsInjured)),
		CyclistsKilled:      parseIntOrZero(field(models.ColCyclistsKilled)),
		MotoristsInjured:    parseIntOrZero(field(models.ColMotoristsInjured)),
		MotoristsKilled:     parseIntOrZero(field(models.ColMotoristsKilled)),
		ContributingFactor1: field(models.ColContributingFactor1),
		ContributingFactor2: field(models.ColContributingFactor2),
		VehicleType1:        field(models.ColVehicleType1),
		VehicleType2:        field(models.ColVehicleType2),
	}
}

// parseDate parses the dataset's MM/DD/YYYY crash date. An unparsable date
// yields the zero time; the record is kept.
func parseDate(s string) time.Time {
	t, err := time.Parse(models.CrashDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseHour extracts the hour from an "H:MM" or "HH:MM" crash time. Malformed
// times coerce to a null hour rather than failing the row.
func parseHour(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return 0, false
	}
	return hour, true
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntOrZero(s string) int {
	if s == "" {
		return 0
	}
	// some exports carry counts as "1.0"
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v)
	}
	return 0
}

// normalizeZip strips a float-formatted ZIP ("11201.0") back to its digits.
func normalizeZip(s string) string {
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}
