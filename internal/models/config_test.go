package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 10, cfg.TopN)
	assert.InDelta(t, 40.730610, cfg.MapCenterLat, 1e-9)
	assert.InDelta(t, -73.935242, cfg.MapCenterLon, 1e-9)
	assert.Equal(t, 10, cfg.MapZoom)
	assert.Equal(t, 8, cfg.HeatRadius)
	assert.Equal(t, 13, cfg.HeatMaxZoom)
	assert.Equal(t, 1000, cfg.SeveritySampleSize)
	assert.Equal(t, 5000, cfg.ClusterSampleSize)
	assert.Equal(t, 365, cfg.DecompositionPeriod)
	assert.Equal(t, "console", cfg.ExportFormat)
	assert.Equal(t, "collisions", cfg.KafkaTopic)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"data_file": "crashes.csv", "top_n": 5, "database": {"host": "db", "port": "5433"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "crashes.csv", cfg.DataFile)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, 10, cfg.MapZoom, "unset keys fall back to defaults")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
