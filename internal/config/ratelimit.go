package config

import (
	"os"
	"strconv"
)

const (
	rateLimitPerMinuteEnv = "RATE_LIMIT_PER_MINUTE"
	rateLimitBurstEnv     = "RATE_LIMIT_BURST"

	defaultRateLimitPerMinute = 120
	defaultRateLimitBurst     = 20
)

// RateLimitConfig limits match requests per client IP. PerMinute of 0 disables it.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

func LoadRateLimitConfig() *RateLimitConfig {
	perMinute := defaultRateLimitPerMinute
	if v := os.Getenv(rateLimitPerMinuteEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			perMinute = parsed
		}
	}

	burst := defaultRateLimitBurst
	if v := os.Getenv(rateLimitBurstEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			burst = parsed
		}
	}

	return &RateLimitConfig{
		PerMinute: perMinute,
		Burst:     burst,
	}
}

func (c *RateLimitConfig) Enabled() bool {
	return c != nil && c.PerMinute > 0
}
