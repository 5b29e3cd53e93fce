package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-group-matching/internal/config"
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/metrics"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/tracing"
	"github.com/KasumiMercury/primind-group-matching/internal/service/boundary"
	"github.com/KasumiMercury/primind-group-matching/internal/service/collector"
	"github.com/KasumiMercury/primind-group-matching/internal/service/coverage"
	"github.com/KasumiMercury/primind-group-matching/internal/service/ranking"
)

const (
	outcomeSuccess    = "success"
	outcomeValidation = "validation_error"
	outcomeNotFound   = "not_found"
	outcomeError      = "error"
)

type Service struct {
	collector    *collector.Collector
	evaluator    coverage.Evaluator
	snapshots    domain.MatchSnapshotRepository
	recorder     domain.MatchResultRecorder
	cfg          *config.MatchConfig
	matchMetrics *metrics.MatchMetrics
	now          func() time.Time
}

// NewService wires the matching pipeline. snapshots and recorder may be nil.
func NewService(
	collector *collector.Collector,
	evaluator coverage.Evaluator,
	snapshots domain.MatchSnapshotRepository,
	recorder domain.MatchResultRecorder,
	cfg *config.MatchConfig,
	matchMetrics *metrics.MatchMetrics,
) *Service {
	return &Service{
		collector:    collector,
		evaluator:    evaluator,
		snapshots:    snapshots,
		recorder:     recorder,
		cfg:          cfg,
		matchMetrics: matchMetrics,
		now:          time.Now,
	}
}

// FindMatches runs collect, extract, evaluate and limit for one request.
// Any error aborts the whole request; no partial result is returned.
func (s *Service) FindMatches(ctx context.Context, req Request) (*Response, error) {
	started := s.now()

	groupIDs := uniqueGroupIDs(req.GroupIDs)

	minimums, maxResults, err := s.resolve(req, groupIDs)
	if err != nil {
		s.recordOutcome(ctx, err, len(groupIDs))
		return nil, err
	}

	ctx, span := tracing.StartMatchSpan(ctx, len(groupIDs), minimums.Default, maxResults)
	defer span.End()

	slog.DebugContext(ctx, "finding matches",
		slog.Int("group_count", len(groupIDs)),
		slog.Uint64("min_per_group", uint64(minimums.Default)),
		slog.Int("override_count", len(minimums.PerGroup)),
		slog.Uint64("max_results", uint64(maxResults)),
	)

	groups, err := s.collect(ctx, groupIDs)
	if err != nil {
		tracing.RecordMatchResult(span, 0, 0, 0, err)
		s.recordOutcome(ctx, err, len(groupIDs))
		return nil, err
	}

	windows := boundary.Extract(groups)

	evalCtx, evalSpan := tracing.StartEvaluateSpan(ctx, s.evaluator.Name(), len(windows))
	evalStart := time.Now()
	accepted := s.evaluator.Evaluate(windows, groups, minimums)
	evalDuration := time.Since(evalStart)
	tracing.RecordError(evalSpan, nil)
	evalSpan.End()

	if s.matchMetrics != nil {
		s.matchMetrics.RecordEvaluationDuration(evalCtx, s.evaluator.Name(), evalDuration)
		s.matchMetrics.RecordWindows(ctx, s.evaluator.Name(), len(windows), len(accepted))
	}

	matches := ranking.Limit(accepted, maxResults)

	summaries := make([]domain.GroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, domain.GroupSummary{
			GroupID:       g.ID,
			Name:          g.Name,
			MemberCount:   g.MemberCount,
			EligibleCount: g.EligibleCount(),
			MinRequired:   minimums.For(g.ID),
		})
	}

	resp := &Response{
		Matches:        matches,
		Groups:         summaries,
		CandidateCount: len(windows),
		AcceptedCount:  len(accepted),
	}

	slog.InfoContext(ctx, "match completed",
		slog.Int("group_count", len(groups)),
		slog.Int("candidate_count", resp.CandidateCount),
		slog.Int("accepted_count", resp.AcceptedCount),
		slog.Int("returned_count", len(matches)),
		slog.String("strategy", s.evaluator.Name()),
	)

	resp.MatchID = s.saveSnapshot(ctx, resp)

	s.record(ctx, domain.MatchRecord{
		MatchID:        resp.MatchID,
		RecordedAt:     s.now(),
		GroupCount:     len(groups),
		MinPerGroup:    minimums.Default,
		CandidateCount: resp.CandidateCount,
		AcceptedCount:  resp.AcceptedCount,
		ReturnedCount:  len(matches),
		Duration:       s.now().Sub(started),
	})

	tracing.RecordMatchResult(span, resp.CandidateCount, resp.AcceptedCount, len(matches), nil)
	s.recordOutcome(ctx, nil, len(groups))

	return resp, nil
}

// GetSnapshot returns a previously stored match response.
func (s *Service) GetSnapshot(ctx context.Context, id string) (*domain.MatchSnapshot, error) {
	if s.snapshots == nil {
		return nil, &domain.NotFoundError{Entity: "match", ID: id}
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a valid match id", id)}
	}

	snapshot, err := s.snapshots.GetSnapshot(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil, &domain.NotFoundError{Entity: "match", ID: id}
		}
		slog.ErrorContext(ctx, "failed to load match snapshot",
			slog.String("match_id", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return snapshot, nil
}

func (s *Service) resolve(req Request, groupIDs []domain.GroupID) (coverage.Minimums, uint, error) {
	if len(groupIDs) == 0 {
		return coverage.Minimums{}, 0, &domain.ValidationError{Field: "group_ids", Reason: "at least one group id must be provided"}
	}

	minimums := coverage.Minimums{Default: s.cfg.DefaultMinPerGroup}
	if req.MinPerGroup != nil {
		minimums.Default = *req.MinPerGroup
	}

	if len(req.GroupMinimums) > 0 {
		var unknown []string
		for id := range req.GroupMinimums {
			if !slices.Contains(groupIDs, id) {
				unknown = append(unknown, id.String())
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			return coverage.Minimums{}, 0, &domain.ValidationError{
				Field:  "group_min",
				Reason: fmt.Sprintf("override for group not in request: %s", strings.Join(unknown, ",")),
			}
		}
		minimums.PerGroup = req.GroupMinimums
	}

	maxResults := s.cfg.DefaultMaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}
	if maxResults > s.cfg.MaxResultsLimit {
		return coverage.Minimums{}, 0, &domain.ValidationError{
			Field:  "max_results",
			Reason: fmt.Sprintf("must not exceed %d", s.cfg.MaxResultsLimit),
		}
	}

	return minimums, maxResults, nil
}

// collect returns the groups in request order.
func (s *Service) collect(ctx context.Context, groupIDs []domain.GroupID) ([]*domain.Group, error) {
	ctx, span := tracing.StartCollectSpan(ctx, len(groupIDs))
	defer span.End()

	start := time.Now()
	collected, err := s.collector.Collect(ctx, groupIDs)
	if s.matchMetrics != nil {
		s.matchMetrics.RecordCollectDuration(ctx, time.Since(start))
	}
	tracing.RecordError(span, err)
	if err != nil {
		return nil, err
	}

	groups := make([]*domain.Group, 0, len(groupIDs))
	for _, id := range groupIDs {
		groups = append(groups, collected[id])
	}
	return groups, nil
}

func (s *Service) saveSnapshot(ctx context.Context, resp *Response) string {
	if s.snapshots == nil {
		return ""
	}

	snapshot := &domain.MatchSnapshot{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Matches:   resp.Matches,
		Groups:    resp.Groups,
	}

	if err := s.snapshots.SaveSnapshot(ctx, snapshot, s.cfg.SnapshotTTL); err != nil {
		slog.WarnContext(ctx, "failed to save match snapshot",
			slog.String("match_id", snapshot.ID),
			slog.String("error", err.Error()),
		)
		return ""
	}

	return snapshot.ID
}

func (s *Service) record(ctx context.Context, record domain.MatchRecord) {
	if s.recorder == nil {
		return
	}

	if err := s.recorder.Record(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record match result",
			slog.String("match_id", record.MatchID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) recordOutcome(ctx context.Context, err error, groupCount int) {
	if s.matchMetrics == nil {
		return
	}

	outcome := outcomeSuccess
	switch {
	case err == nil:
	case domain.IsValidation(err):
		outcome = outcomeValidation
	case domain.IsNotFound(err):
		outcome = outcomeNotFound
	default:
		outcome = outcomeError
	}
	s.matchMetrics.RecordRequest(ctx, outcome, groupCount)
}

func uniqueGroupIDs(ids []domain.GroupID) []domain.GroupID {
	seen := make(map[domain.GroupID]struct{}, len(ids))
	unique := make([]domain.GroupID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
