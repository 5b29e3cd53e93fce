//go:build !gcloud

package matchrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

const influxMeasurement = "match_result"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.MatchResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "match result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, match result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "match result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) Record(ctx context.Context, record domain.MatchRecord) error {
	if err := r.writeAPI.WritePoint(ctx, newPoint(record)); err != nil {
		return fmt.Errorf("write match result to InfluxDB: %w", err)
	}
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}

func newPoint(record domain.MatchRecord) *write.Point {
	matchID := record.MatchID
	if matchID == "" {
		matchID = "unsaved"
	}

	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return influxdb2.NewPoint(
		influxMeasurement,
		map[string]string{
			"match_id":      matchID,
			"group_count":   strconv.Itoa(record.GroupCount),
			"min_per_group": strconv.FormatUint(uint64(record.MinPerGroup), 10),
		},
		map[string]any{
			"candidate_count": record.CandidateCount,
			"accepted_count":  record.AcceptedCount,
			"returned_count":  record.ReturnedCount,
			"duration_ms":     record.Duration.Milliseconds(),
		},
		recordedAt,
	)
}
