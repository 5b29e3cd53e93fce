package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	matchMeterName = "matching.service"
)

type MatchMetrics struct {
	requests           metric.Int64Counter
	candidateWindows   metric.Int64Histogram
	acceptedWindows    metric.Int64Histogram
	sourceFetches      metric.Int64Counter
	collectDuration    metric.Float64Histogram
	evaluationDuration metric.Float64Histogram
}

func NewMatchMetrics() (*MatchMetrics, error) {
	meter := otel.Meter(matchMeterName)

	requests, err := meter.Int64Counter(
		"matching_requests_total",
		metric.WithDescription("Total number of match requests by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	candidateWindows, err := meter.Int64Histogram(
		"matching_candidate_windows",
		metric.WithDescription("Candidate windows derived per request"),
		metric.WithUnit("{window}"),
		metric.WithExplicitBucketBoundaries(0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000),
	)
	if err != nil {
		return nil, err
	}

	acceptedWindows, err := meter.Int64Histogram(
		"matching_accepted_windows",
		metric.WithDescription("Windows meeting every group's minimum per request"),
		metric.WithUnit("{window}"),
		metric.WithExplicitBucketBoundaries(0, 1, 5, 10, 25, 50, 100, 250, 500),
	)
	if err != nil {
		return nil, err
	}

	sourceFetches, err := meter.Int64Counter(
		"matching_source_fetches_total",
		metric.WithDescription("Availability source lookups, split into fetched and reused"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, err
	}

	collectDuration, err := meter.Float64Histogram(
		"matching_collect_duration_seconds",
		metric.WithDescription("Time spent collecting rosters and availability"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	evaluationDuration, err := meter.Float64Histogram(
		"matching_evaluation_duration_seconds",
		metric.WithDescription("Time spent extracting and evaluating candidate windows"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	return &MatchMetrics{
		requests:           requests,
		candidateWindows:   candidateWindows,
		acceptedWindows:    acceptedWindows,
		sourceFetches:      sourceFetches,
		collectDuration:    collectDuration,
		evaluationDuration: evaluationDuration,
	}, nil
}

func (m *MatchMetrics) RecordRequest(ctx context.Context, outcome string, groupCount int) {
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("group_count", groupCount),
	))
}

func (m *MatchMetrics) RecordWindows(ctx context.Context, strategy string, candidates, accepted int) {
	attrs := metric.WithAttributes(attribute.String("strategy", strategy))
	m.candidateWindows.Record(ctx, int64(candidates), attrs)
	m.acceptedWindows.Record(ctx, int64(accepted), attrs)
}

func (m *MatchMetrics) RecordSourceFetches(ctx context.Context, fetched, reused int) {
	m.sourceFetches.Add(ctx, int64(fetched), metric.WithAttributes(attribute.String("result", "fetched")))
	m.sourceFetches.Add(ctx, int64(reused), metric.WithAttributes(attribute.String("result", "reused")))
}

func (m *MatchMetrics) RecordCollectDuration(ctx context.Context, duration time.Duration) {
	m.collectDuration.Record(ctx, duration.Seconds())
}

func (m *MatchMetrics) RecordEvaluationDuration(ctx context.Context, strategy string, duration time.Duration) {
	m.evaluationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("strategy", strategy),
	))
}
