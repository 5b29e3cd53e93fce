package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/tracing"
)

const (
	snapshotKeyPrefix = "matching:snapshot:"

	defaultSnapshotTTL = 24 * time.Hour
)

type snapshotRecord struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Matches   []matchRecord        `json:"matches"`
	Groups    []groupSummaryRecord `json:"groups"`
}

type matchRecord struct {
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Groups []coverageRecord `json:"groups"`
}

type coverageRecord struct {
	GroupID   string   `json:"group_id"`
	Name      string   `json:"name"`
	UserIDs   []string `json:"user_ids"`
	GroupSize int      `json:"group_size"`
}

type groupSummaryRecord struct {
	GroupID       string `json:"group_id"`
	Name          string `json:"name"`
	MemberCount   int    `json:"member_count"`
	EligibleCount int    `json:"eligible_count"`
	MinRequired   uint   `json:"min_required"`
}

type snapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) domain.MatchSnapshotRepository {
	return &snapshotRepository{
		client: client,
	}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.MatchSnapshot, ttl time.Duration) error {
	if snapshot == nil || snapshot.ID == "" {
		return ErrInvalidSnapshotData
	}
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}

	key := snapshotKeyPrefix + snapshot.ID

	ctx, span := tracing.StartRedisOperationSpan(ctx, "set", key)
	defer span.End()

	data, err := json.Marshal(toSnapshotRecord(snapshot))
	if err != nil {
		tracing.RecordError(span, err)
		return ErrInvalidSnapshotData
	}

	err = r.client.Set(ctx, key, data, ttl).Err()
	tracing.RecordError(span, err)
	return err
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, id string) (*domain.MatchSnapshot, error) {
	key := snapshotKeyPrefix + id

	ctx, span := tracing.StartRedisOperationSpan(ctx, "get", key)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			tracing.RecordError(span, nil)
			return nil, domain.ErrSnapshotNotFound
		}
		tracing.RecordError(span, err)
		return nil, err
	}

	var record snapshotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		tracing.RecordError(span, err)
		return nil, ErrInvalidSnapshotData
	}

	snapshot, err := record.toDomain()
	tracing.RecordError(span, err)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func toSnapshotRecord(s *domain.MatchSnapshot) snapshotRecord {
	matches := make([]matchRecord, 0, len(s.Matches))
	for _, m := range s.Matches {
		groups := make([]coverageRecord, 0, len(m.Groups))
		for _, g := range m.Groups {
			users := make([]string, 0, len(g.AvailableUserIDs))
			for _, u := range g.AvailableUserIDs {
				users = append(users, u.String())
			}
			groups = append(groups, coverageRecord{
				GroupID:   g.GroupID.String(),
				Name:      g.Name,
				UserIDs:   users,
				GroupSize: g.GroupSize,
			})
		}
		matches = append(matches, matchRecord{Start: m.Start, End: m.End, Groups: groups})
	}

	summaries := make([]groupSummaryRecord, 0, len(s.Groups))
	for _, g := range s.Groups {
		summaries = append(summaries, groupSummaryRecord{
			GroupID:       g.GroupID.String(),
			Name:          g.Name,
			MemberCount:   g.MemberCount,
			EligibleCount: g.EligibleCount,
			MinRequired:   g.MinRequired,
		})
	}

	return snapshotRecord{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Matches:   matches,
		Groups:    summaries,
	}
}

func (r snapshotRecord) toDomain() (*domain.MatchSnapshot, error) {
	matches := make([]domain.MatchResult, 0, len(r.Matches))
	for _, m := range r.Matches {
		groups := make([]domain.GroupCoverage, 0, len(m.Groups))
		for _, g := range m.Groups {
			groupID, err := domain.ParseGroupID(g.GroupID)
			if err != nil {
				return nil, ErrInvalidSnapshotData
			}
			users := make([]domain.UserID, 0, len(g.UserIDs))
			for _, u := range g.UserIDs {
				users = append(users, domain.UserID(u))
			}
			groups = append(groups, domain.GroupCoverage{
				GroupID:          groupID,
				Name:             g.Name,
				AvailableUserIDs: users,
				Count:            len(users),
				GroupSize:        g.GroupSize,
			})
		}
		matches = append(matches, domain.MatchResult{
			Start:  m.Start.UTC(),
			End:    m.End.UTC(),
			Groups: groups,
		})
	}

	summaries := make([]domain.GroupSummary, 0, len(r.Groups))
	for _, g := range r.Groups {
		groupID, err := domain.ParseGroupID(g.GroupID)
		if err != nil {
			return nil, ErrInvalidSnapshotData
		}
		summaries = append(summaries, domain.GroupSummary{
			GroupID:       groupID,
			Name:          g.Name,
			MemberCount:   g.MemberCount,
			EligibleCount: g.EligibleCount,
			MinRequired:   g.MinRequired,
		})
	}

	return &domain.MatchSnapshot{
		ID:        r.ID,
		CreatedAt: r.CreatedAt.UTC(),
		Matches:   matches,
		Groups:    summaries,
	}, nil
}
