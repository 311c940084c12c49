package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/kafka"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/postgres"
)

// Config holds all configuration for the failure ETL.
type Config struct {
	Postgres   postgres.Config
	Kafka      kafka.Config
	Sources    SourcesConfig
	KafkaTopic string

	HTTPPort     string
	Environment  string
	LogLevel     string
	LogFormat    string
	OTLPEndpoint string
	OTLPInsecure bool

	// ErrorPolicy is "skip" or "abort"; ScoreWorkers sizes the scoring pool.
	ErrorPolicy  string
	ScoreWorkers int
}

// SourcesConfig points at the four source table files.
type SourcesConfig struct {
	AssetsPath      string
	InspectionsPath string
	LeaksPath       string
	RepairsPath     string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Postgres: postgres.Config{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "etl"),
			Password: getEnv("POSTGRES_PASSWORD", "etl"),
			Database: getEnv("POSTGRES_DB", "pipelines"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			AppName:  "failure-etl",
			MaxConns: int32(getEnvInt("POSTGRES_MAX_CONNS", 0)),
			MinConns: int32(getEnvInt("POSTGRES_MIN_CONNS", 0)),
		},
		Kafka: kafka.Config{
			Brokers:       splitList(os.Getenv("KAFKA_BROKERS")),
			TLS:           getEnvBool("KAFKA_TLS", false),
			TLSCAFile:     getEnv("KAFKA_TLS_CA_FILE", ""),
			TLSInsecure:   getEnvBool("KAFKA_TLS_INSECURE", false),
			SASLEnabled:   getEnvBool("KAFKA_SASL", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
		},
		Sources: SourcesConfig{
			AssetsPath:      getEnv("ASSETS_CSV", "data/assets.csv"),
			InspectionsPath: getEnv("INSPECTIONS_CSV", "data/inspections.csv"),
			LeaksPath:       getEnv("LEAKS_CSV", "data/leaks.csv"),
			RepairsPath:     getEnv("REPAIRS_CSV", "data/repairs.csv"),
		},
		KafkaTopic:   getEnv("KAFKA_TOPIC", "pipeline.events"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		OTLPInsecure: getEnvBool("OTLP_INSECURE", true),
		ErrorPolicy:  getEnv("ON_ERROR", "skip"),
		ScoreWorkers: getEnvInt("SCORE_WORKERS", 4),
	}

	if cfg.ErrorPolicy != "skip" && cfg.ErrorPolicy != "abort" {
		return nil, fmt.Errorf("config: invalid ON_ERROR %q (want skip or abort)", cfg.ErrorPolicy)
	}
	if cfg.ScoreWorkers < 1 {
		return nil, fmt.Errorf("config: SCORE_WORKERS must be at least 1, got %d", cfg.ScoreWorkers)
	}

	return cfg, nil
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// PublishingEnabled reports whether a Kafka broker has been configured.
func (c *Config) PublishingEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

// TracingEnabled reports whether an OTLP endpoint has been configured.
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
