//go:build !gcloud

package observability

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
)

const otlpEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// newExporters exports over OTLP/HTTP when an endpoint is configured and keeps
// telemetry in-process otherwise.
func newExporters(ctx context.Context, _ Config) (exporterSet, error) {
	if os.Getenv(otlpEndpointEnv) == "" {
		slog.InfoContext(ctx, "OTLP endpoint not set, telemetry export disabled")
		return exporterSet{}, nil
	}

	spanExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return exporterSet{}, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return exporterSet{}, err
	}

	return exporterSet{span: spanExporter, metric: metricExporter}, nil
}
