package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/lucsky/cuid"
)

// Destination is a sink for exported collision records.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// NewDestination selects a sink from the configured export format.
func NewDestination(ctx context.Context, cfg *models.Config) (Destination, error) {
	switch cfg.ExportFormat {
	case "kafka":
		return NewKafkaDestination(cfg)
	case "parquet":
		return NewParquetDestination(cfg)
	case "postgres":
		return NewPostgresDestination(ctx, cfg)
	case "console":
		return &ConsoleDestination{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", cfg.ExportFormat)
	}
}

// Exporter streams collision records to a destination as JSON messages keyed
// by a per-run batch ID.
type Exporter struct {
	dest    Destination
	topic   string
	BatchID string
}

func NewExporter(dest Destination, topic string) *Exporter {
	return &Exporter{dest: dest, topic: topic, BatchID: cuid.New()}
}

// Export writes one record to the destination.
func (e *Exporter) Export(c models.Collision) error {
	rec := FromCollision(c, e.BatchID)
	msg, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", rec.ID, err)
	}
	if err := e.dest.WriteMessage(e.topic, msg); err != nil {
		return fmt.Errorf("write record %s: %w", rec.ID, err)
	}
	return nil
}

// Close flushes and closes the underlying destination.
func (e *Exporter) Close() error {
	return e.dest.Close()
}
