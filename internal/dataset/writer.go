package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/crashlens/crashlens/internal/models"
)

// csvColumns is the column order of the real dataset export, so generated
// files load through the same path as downloaded ones.
var csvColumns = []string{
	models.ColCrashDate,
	models.ColCrashTime,
	models.ColBorough,
	models.ColZipCode,
	models.ColLatitude,
	models.ColLongitude,
	models.ColOnStreetName,
	models.ColCrossStreetName,
	models.ColPersonsInjured,
	models.ColPersonsKilled,
	models.ColPedestriansInjured,
	models.ColPedestriansKilled,
	models.ColCyclistsInjured,
	models.ColCyclistsKilled,
	models.ColMotoristsInjured,
	models.ColMotoristsKilled,
	models.ColContributingFactor1,
	models.ColContributingFactor2,
	models.ColVehicleType1,
	models.ColVehicleType2,
}

// WriteCSV writes records in the dataset's CSV layout.
func WriteCSV(w io.Writer, records []models.Collision) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		if err := cw.Write(recordToRow(rec)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func recordToRow(rec models.Collision) []string {
	crashTime := ""
	if rec.HasTime {
		crashTime = fmt.Sprintf("%d:00", rec.Hour)
	}

	return []string{
		rec.CrashDate.Format(models.CrashDateLayout),
		crashTime,
		rec.Borough,
		rec.ZipCode,
		floatPtrString(rec.Latitude),
		floatPtrString(rec.Longitude),
		rec.OnStreetName,
		rec.CrossStreetName,
		strconv.Itoa(rec.PersonsInjured),
		strconv.Itoa(rec.PersonsKilled),
		strconv.Itoa(rec.PedestriansInjured),
		strconv.Itoa(rec.PedestriansKilled),
		strconv.Itoa(rec.CyclistsInjured),
		strconv.Itoa(rec.CyclistsKilled),
		strconv.Itoa(rec.MotoristsInjured),
		strconv.Itoa(rec.MotoristsKilled),
		rec.ContributingFactor1,
		rec.ContributingFactor2,
		rec.VehicleType1,
		rec.VehicleType2,
	}
}

func floatPtrString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}
