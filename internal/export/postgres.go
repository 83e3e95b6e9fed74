package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crashlens/crashlens/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS collisions (
    id                  TEXT PRIMARY KEY,
    batch_id            TEXT NOT NULL,
    crash_date          DATE NOT NULL,
    hour                INT,
    has_time            BOOLEAN NOT NULL,
    borough             TEXT,
    zip_code            TEXT,
    on_street_name      TEXT,
    latitude            DOUBLE PRECISION,
    longitude           DOUBLE PRECISION,
    persons_injured     INT NOT NULL,
    persons_killed      INT NOT NULL,
    contributing_factor TEXT,
    vehicle_type        TEXT,
    severity            TEXT NOT NULL
)`

const insertSQL = `
INSERT INTO collisions (
    id, batch_id, crash_date, hour, has_time, borough, zip_code,
    on_street_name, latitude, longitude, persons_injured, persons_killed,
    contributing_factor, vehicle_type, severity
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO NOTHING`

// PostgresDestination inserts export records into a collisions table.
// Deterministic record IDs make re-exports idempotent.
type PostgresDestination struct {
	pool *pgxpool.Pool
}

func NewPostgresDestination(ctx context.Context, cfg *models.Config) (*PostgresDestination, error) {
	db := cfg.Database
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.DBName, db.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error creating collisions table: %w", err)
	}

	return &PostgresDestination{pool: pool}, nil
}

func (p *PostgresDestination) WriteMessage(topic string, msg []byte) error {
	var rec Record
	if err := json.Unmarshal(msg, &rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	_, err := p.pool.Exec(context.Background(), insertSQL,
		rec.ID,
		rec.BatchID,
		rec.CrashDate,
		rec.Hour,
		rec.HasTime,
		rec.Borough,
		rec.ZipCode,
		rec.OnStreetName,
		rec.Latitude,
		rec.Longitude,
		rec.PersonsInjured,
		rec.PersonsKilled,
		rec.ContributingFactor,
		rec.VehicleType,
		rec.Severity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert collision %s: %w", rec.ID, err)
	}
	return nil
}

func (p *PostgresDestination) Close() error {
	p.pool.Close()
	return nil
}
