package config

import (
	"os"
	"strconv"
	"time"
)

const (
	matchEvaluationStrategyEnv = "MATCH_EVALUATION_STRATEGY"
	matchDefaultMinPerGroupEnv = "MATCH_DEFAULT_MIN_PER_GROUP"
	matchDefaultMaxResultsEnv  = "MATCH_DEFAULT_MAX_RESULTS"
	matchMaxResultsLimitEnv    = "MATCH_MAX_RESULTS_LIMIT"
	matchFetchConcurrencyEnv   = "MATCH_FETCH_CONCURRENCY"
	matchSnapshotTTLEnv        = "MATCH_SNAPSHOT_TTL"
	matchSnapshotsDisabledEnv  = "MATCH_SNAPSHOTS_DISABLED"
	matchRequestTimeoutEnv     = "MATCH_REQUEST_TIMEOUT"

	defaultMatchEvaluationStrategy = EvaluationStrategyShortCircuit
	defaultMatchMinPerGroup        = 1
	defaultMatchMaxResults         = 5
	defaultMatchMaxResultsLimit    = 100
	defaultMatchFetchConcurrency   = 4
	defaultMatchSnapshotTTL        = 24 * time.Hour
	defaultMatchRequestTimeout     = 30 * time.Second
)

type EvaluationStrategy string

const (
	EvaluationStrategyShortCircuit EvaluationStrategy = "short_circuit"
	EvaluationStrategyFull         EvaluationStrategy = "full"
)

type MatchConfig struct {
	EvaluationStrategy EvaluationStrategy
	DefaultMinPerGroup uint
	DefaultMaxResults  uint
	MaxResultsLimit    uint
	FetchConcurrency   int
	SnapshotTTL        time.Duration
	SnapshotsDisabled  bool
	RequestTimeout     time.Duration
}

func LoadMatchConfig() (*MatchConfig, error) {
	strategy := EvaluationStrategy(os.Getenv(matchEvaluationStrategyEnv))
	switch strategy {
	case EvaluationStrategyShortCircuit, EvaluationStrategyFull:
	default:
		strategy = defaultMatchEvaluationStrategy
	}

	minPerGroup, err := uintEnv(matchDefaultMinPerGroupEnv, defaultMatchMinPerGroup)
	if err != nil {
		return nil, err
	}

	maxResults, err := uintEnv(matchDefaultMaxResultsEnv, defaultMatchMaxResults)
	if err != nil {
		return nil, err
	}

	limit, err := uintEnv(matchMaxResultsLimitEnv, defaultMatchMaxResultsLimit)
	if err != nil {
		return nil, err
	}
	if maxResults > limit {
		return nil, ErrInvalidMatchLimits
	}

	concurrency := defaultMatchFetchConcurrency
	if v := os.Getenv(matchFetchConcurrencyEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	ttl := defaultMatchSnapshotTTL
	if v := os.Getenv(matchSnapshotTTLEnv); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	timeout := defaultMatchRequestTimeout
	if v := os.Getenv(matchRequestTimeoutEnv); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return &MatchConfig{
		EvaluationStrategy: strategy,
		DefaultMinPerGroup: minPerGroup,
		DefaultMaxResults:  maxResults,
		MaxResultsLimit:    limit,
		FetchConcurrency:   concurrency,
		SnapshotTTL:        ttl,
		SnapshotsDisabled:  os.Getenv(matchSnapshotsDisabledEnv) == "true",
		RequestTimeout:     timeout,
	}, nil
}

func uintEnv(key string, fallback uint) (uint, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &InvalidValueError{Key: key, Value: raw}
	}
	return uint(parsed), nil
}
