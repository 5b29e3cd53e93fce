//go:build gcloud

package matchrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	MatchID        string    `bigquery:"match_id"`
	GroupCount     int64     `bigquery:"group_count"`
	MinPerGroup    int64     `bigquery:"min_per_group"`
	CandidateCount int64     `bigquery:"candidate_count"`
	AcceptedCount  int64     `bigquery:"accepted_count"`
	ReturnedCount  int64     `bigquery:"returned_count"`
	DurationMS     int64     `bigquery:"duration_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.MatchResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "match result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, match result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, match result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "match result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) Record(ctx context.Context, record domain.MatchRecord) error {
	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	row := &bigQueryRecord{
		RecordedAt:     recordedAt,
		MatchID:        record.MatchID,
		GroupCount:     int64(record.GroupCount),
		MinPerGroup:    int64(record.MinPerGroup),
		CandidateCount: int64(record.CandidateCount),
		AcceptedCount:  int64(record.AcceptedCount),
		ReturnedCount:  int64(record.ReturnedCount),
		DurationMS:     record.Duration.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		return fmt.Errorf("insert match result to BigQuery: %w", err)
	}
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
