package config

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseURLMissing  = errors.New("DATABASE_URL is required")
	ErrInvalidDatabasePool = errors.New("DATABASE_MAX_OPEN_CONNS and DATABASE_MAX_IDLE_CONNS must be valid integers")
	ErrRedisAddrMissing    = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB      = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidMatchLimits  = errors.New("MATCH_DEFAULT_MAX_RESULTS must not exceed MATCH_MAX_RESULTS_LIMIT")
)

type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s must be a non-negative integer, got %q", e.Key, e.Value)
}
