package export

import (
	"github.com/crashlens/crashlens/internal/models"
)

// Record is the flat export shape of a collision, annotated for both JSON
// sinks (Kafka, console) and the Parquet writer.
type Record struct {
	ID        string `json:"id" parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	BatchID   string `json:"batch_id" parquet:"name=batch_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CrashDate string `json:"crash_date" parquet:"name=crash_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	Hour      int32  `json:"hour" parquet:"name=hour, type=INT32"`
	HasTime   bool   `json:"has_time" parquet:"name=has_time, type=BOOLEAN"`

	Borough      string `json:"borough" parquet:"name=borough, type=BYTE_ARRAY, convertedtype=UTF8"`
	ZipCode      string `json:"zip_code" parquet:"name=zip_code, type=BYTE_ARRAY, convertedtype=UTF8"`
	OnStreetName string `json:"on_street_name" parquet:"name=on_street_name, type=BYTE_ARRAY, convertedtype=UTF8"`

	Latitude  *float64 `json:"latitude" parquet:"name=latitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	Longitude *float64 `json:"longitude" parquet:"name=longitude, type=DOUBLE, repetitiontype=OPTIONAL"`

	PersonsInjured int32 `json:"persons_injured" parquet:"name=persons_injured, type=INT32"`
	PersonsKilled  int32 `json:"persons_killed" parquet:"name=persons_killed, type=INT32"`

	ContributingFactor string `json:"contributing_factor" parquet:"name=contributing_factor, type=BYTE_ARRAY, convertedtype=UTF8"`
	VehicleType        string `json:"vehicle_type" parquet:"name=vehicle_type, type=BYTE_ARRAY, convertedtype=UTF8"`

	Severity string `json:"severity" parquet:"name=severity, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// FromCollision flattens a collision into its export shape, tagging it with
// the batch it was exported under.
func FromCollision(c models.Collision, batchID string) Record {
	return Record{
		ID:                 c.ID(),
		BatchID:            batchID,
		CrashDate:          c.CrashDate.Format("2006-01-02"),
		Hour:               int32(c.Hour),
		HasTime:            c.HasTime,
		Borough:            c.Borough,
		ZipCode:            c.ZipCode,
		OnStreetName:       c.OnStreetName,
		Latitude:           c.Latitude,
		Longitude:          c.Longitude,
		PersonsInjured:     int32(c.PersonsInjured),
		PersonsKilled:      int32(c.PersonsKilled),
		ContributingFactor: c.ContributingFactor1,
		VehicleType:        c.VehicleType1,
		Severity:           string(c.SeverityClass()),
	}
}
