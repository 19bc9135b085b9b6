package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultEventsTable is the table the bundled migrations create.
const DefaultEventsTable = "events"

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	EventsTable     string
	MigrationsPath  string
}

type ReportConfig struct {
	Location *time.Location
}

type Config struct {
	DB     DatabaseConfig
	Report ReportConfig
	Env    string
}

// LoadConfig reads the environment, seeded from envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 20)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 10)
	if err != nil {
		return nil, err
	}
	lifetime, err := getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	tz := getEnv("REPORT_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: REPORT_TIMEZONE=%q: %v", ErrInvalidConfig, tz, err)
	}

	return &Config{
		DB: DatabaseConfig{
			DSN:             getEnv("POSTGRES_DSN", ""),
			MaxOpenConns:    maxOpen,
			MaxIdleConns:    maxIdle,
			ConnMaxLifetime: lifetime,
			EventsTable:     getEnv("EVENTS_TABLE", DefaultEventsTable),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Report: ReportConfig{
			Location: loc,
		},
		Env: getEnv("ENV", "prod"),
	}, nil
}

// RequireDSN is checked by commands that talk to the database.
func (c *Config) RequireDSN() error {
	if c.DB.DSN == "" {
		return fmt.Errorf("%w: POSTGRES_DSN is not set", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
	}
	return d, nil
}
