package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	portEnv        = "PORT"
	logLevelEnv    = "LOG_LEVEL"
	envEnv         = "ENV"
	serviceNameEnv = "SERVICE_NAME"
	corsOriginsEnv = "API_CORS_ORIGINS"

	defaultPort        = "8080"
	defaultServiceName = "group-matching"
)

type Config struct {
	Port        string
	LogLevel    slog.Level
	Env         string
	ServiceName string
	CORSOrigins []string
	Database    *DatabaseConfig
	Redis       *RedisConfig
	Match       *MatchConfig
	RateLimit   *RateLimitConfig
}

func Load() (*Config, error) {
	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	serviceName := os.Getenv(serviceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	env := os.Getenv(envEnv)
	if env == "" {
		env = "dev"
	}

	databaseConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	matchConfig, err := LoadMatchConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv(logLevelEnv)),
		Env:         env,
		ServiceName: serviceName,
		CORSOrigins: parseList(os.Getenv(corsOriginsEnv)),
		Database:    databaseConfig,
		Redis:       redisConfig,
		Match:       matchConfig,
		RateLimit:   LoadRateLimitConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
