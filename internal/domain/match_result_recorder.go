package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=match_result_recorder.go -destination=match_result_recorder_mock.go -package=domain

// MatchRecord summarises one match request for offline analysis.
type MatchRecord struct {
	MatchID        string
	RecordedAt     time.Time
	GroupCount     int
	MinPerGroup    uint
	CandidateCount int
	AcceptedCount  int
	ReturnedCount  int
	Duration       time.Duration
}

type MatchResultRecorder interface {
	Record(ctx context.Context, record MatchRecord) error
	Close() error
}
