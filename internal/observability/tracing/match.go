package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const matchTracerName = "github.com/KasumiMercury/primind-group-matching/internal/service/match"

func MatchTracer() trace.Tracer {
	return otel.Tracer(matchTracerName)
}

func StartMatchSpan(ctx context.Context, groupCount int, minPerGroup, maxResults uint) (context.Context, trace.Span) {
	return MatchTracer().Start(ctx, "matching.find_matches",
		trace.WithAttributes(
			attribute.Int("match.group_count", groupCount),
			attribute.Int64("match.min_per_group", int64(minPerGroup)),
			attribute.Int64("match.max_results", int64(maxResults)),
		),
	)
}

func StartCollectSpan(ctx context.Context, groupCount int) (context.Context, trace.Span) {
	return MatchTracer().Start(ctx, "matching.collect",
		trace.WithAttributes(
			attribute.Int("collect.group_count", groupCount),
		),
	)
}

func StartEvaluateSpan(ctx context.Context, strategy string, candidateCount int) (context.Context, trace.Span) {
	return MatchTracer().Start(ctx, "matching.evaluate",
		trace.WithAttributes(
			attribute.String("evaluate.strategy", strategy),
			attribute.Int("evaluate.candidate_count", candidateCount),
		),
	)
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return MatchTracer().Start(ctx, "matching.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordError(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func RecordMatchResult(span trace.Span, candidateCount, acceptedCount, returnedCount int, err error) {
	span.SetAttributes(
		attribute.Int("match.candidate_count", candidateCount),
		attribute.Int("match.accepted_count", acceptedCount),
		attribute.Int("match.returned_count", returnedCount),
	)
	RecordError(span, err)
}
