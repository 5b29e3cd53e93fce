package matchrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.MatchResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) Record(_ context.Context, _ domain.MatchRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
