package config

import (
	"os"
	"strconv"
	"time"
)

const (
	databaseURLEnv             = "DATABASE_URL"
	databaseMaxOpenConnsEnv    = "DATABASE_MAX_OPEN_CONNS"
	databaseMaxIdleConnsEnv    = "DATABASE_MAX_IDLE_CONNS"
	databaseConnMaxLifetimeEnv = "DATABASE_CONN_MAX_LIFETIME"
	databaseAutoMigrateEnv     = "DATABASE_AUTO_MIGRATE"

	defaultDatabaseMaxOpenConns    = 10
	defaultDatabaseMaxIdleConns    = 5
	defaultDatabaseConnMaxLifetime = 30 * time.Minute
)

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

func LoadDatabaseConfig() (*DatabaseConfig, error) {
	maxOpen := defaultDatabaseMaxOpenConns
	if v := os.Getenv(databaseMaxOpenConnsEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidDatabasePool
		}
		maxOpen = parsed
	}

	maxIdle := defaultDatabaseMaxIdleConns
	if v := os.Getenv(databaseMaxIdleConnsEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidDatabasePool
		}
		maxIdle = parsed
	}

	lifetime := defaultDatabaseConnMaxLifetime
	if v := os.Getenv(databaseConnMaxLifetimeEnv); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			lifetime = parsed
		}
	}

	return &DatabaseConfig{
		URL:             os.Getenv(databaseURLEnv),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: lifetime,
		AutoMigrate:     os.Getenv(databaseAutoMigrateEnv) == "true",
	}, nil
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}
