//go:build gcloud

package observability

import (
	"context"
	"errors"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
)

func newExporters(_ context.Context, cfg Config) (exporterSet, error) {
	if cfg.GCPProjectID == "" {
		return exporterSet{}, errors.New("GCP project id is required for Cloud Trace and Cloud Monitoring export")
	}

	spanExporter, err := texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return exporterSet{}, err
	}

	metricExporter, err := mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return exporterSet{}, err
	}

	return exporterSet{span: spanExporter, metric: metricExporter}, nil
}
