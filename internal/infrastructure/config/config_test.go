package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "pipelines", cfg.Postgres.Database)
	assert.Equal(t, "failure-etl", cfg.Postgres.AppName)
	assert.Equal(t, "data/assets.csv", cfg.Sources.AssetsPath)
	assert.Equal(t, "data/repairs.csv", cfg.Sources.RepairsPath)
	assert.Equal(t, "skip", cfg.ErrorPolicy)
	assert.Equal(t, 4, cfg.ScoreWorkers)
	assert.Equal(t, "pipeline.events", cfg.KafkaTopic)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.False(t, cfg.PublishingEnabled())
	assert.False(t, cfg.TracingEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("ASSETS_CSV", "/srv/input/assets.csv")
	t.Setenv("ON_ERROR", "abort")
	t.Setenv("SCORE_WORKERS", "16")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("OTLP_ENDPOINT", "collector:4317")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 15432, cfg.Postgres.Port)
	assert.Equal(t, "/srv/input/assets.csv", cfg.Sources.AssetsPath)
	assert.Equal(t, "abort", cfg.ErrorPolicy)
	assert.Equal(t, 16, cfg.ScoreWorkers)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.PublishingEnabled())
	assert.True(t, cfg.TracingEnabled())
}

func TestLoadRejectsInvalidErrorPolicy(t *testing.T) {
	t.Setenv("ON_ERROR", "retry")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ON_ERROR")
}

func TestLoadRejectsNonPositiveWorkers(t *testing.T) {
	t.Setenv("SCORE_WORKERS", "0")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCORE_WORKERS")
}

func TestLoadFallsBackOnUnparsableNumbers(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-port")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}
