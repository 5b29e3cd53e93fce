package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=match_snapshot_repository.go -destination=match_snapshot_repository_mock.go -package=domain

type MatchSnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *MatchSnapshot, ttl time.Duration) error
	GetSnapshot(ctx context.Context, id string) (*MatchSnapshot, error)
}
