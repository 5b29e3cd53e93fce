package collector

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/metrics"
)

const defaultConcurrency = 4

// Collector gathers the availability of every member of the requested groups.
type Collector struct {
	rosters      domain.RosterRepository
	users        domain.UserRepository
	intervals    domain.IntervalRepository
	concurrency  int
	matchMetrics *metrics.MatchMetrics
}

func NewCollector(
	rosters domain.RosterRepository,
	users domain.UserRepository,
	intervals domain.IntervalRepository,
	concurrency int,
	matchMetrics *metrics.MatchMetrics,
) *Collector {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Collector{
		rosters:      rosters,
		users:        users,
		intervals:    intervals,
		concurrency:  concurrency,
		matchMetrics: matchMetrics,
	}
}

type linkedMember struct {
	userID   domain.UserID
	sourceID domain.SourceID
}

// Collect returns one Group per requested id.
//
// Members without an availability source are left out of Group.Members but
// still counted in Group.MemberCount. Each distinct source is fetched once per
// call, however many members share it. Collaborator errors other than
// not-found are returned unchanged.
func (c *Collector) Collect(ctx context.Context, groupIDs []domain.GroupID) (map[domain.GroupID]*domain.Group, error) {
	if len(groupIDs) == 0 {
		return nil, &domain.ValidationError{Field: "group_ids", Reason: "at least one group id must be provided"}
	}

	groups := make(map[domain.GroupID]*domain.Group, len(groupIDs))
	linked := make(map[domain.GroupID][]linkedMember, len(groupIDs))
	var sources []domain.SourceID
	seenSource := make(map[domain.SourceID]struct{})

	for _, groupID := range groupIDs {
		if _, ok := groups[groupID]; ok {
			continue
		}

		roster, err := c.rosters.GetRoster(ctx, groupID)
		if err != nil {
			if errors.Is(err, domain.ErrGroupNotFound) {
				return nil, &domain.NotFoundError{Entity: "group", ID: groupID.String()}
			}
			return nil, err
		}

		members := make([]linkedMember, 0, len(roster.MemberIDs))
		for _, userID := range roster.MemberIDs {
			user, err := c.users.GetUser(ctx, userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return nil, &domain.NotFoundError{Entity: "user", ID: userID.String()}
				}
				return nil, err
			}

			if user.SourceID == nil {
				slog.DebugContext(ctx, "excluding member without availability source",
					slog.String("group_id", groupID.String()),
					slog.String("user_id", userID.String()),
				)
				continue
			}

			members = append(members, linkedMember{userID: userID, sourceID: *user.SourceID})
			if _, ok := seenSource[*user.SourceID]; !ok {
				seenSource[*user.SourceID] = struct{}{}
				sources = append(sources, *user.SourceID)
			}
		}

		groups[groupID] = &domain.Group{
			ID:          groupID,
			Name:        roster.Name,
			MemberCount: len(roster.MemberIDs),
		}
		linked[groupID] = members
	}

	availability, err := c.fetchSources(ctx, sources)
	if err != nil {
		return nil, err
	}

	if c.matchMetrics != nil {
		total := 0
		for _, members := range linked {
			total += len(members)
		}
		c.matchMetrics.RecordSourceFetches(ctx, len(sources), total-len(sources))
	}

	for groupID, members := range linked {
		g := groups[groupID]
		g.Members = make([]domain.UserAvailability, 0, len(members))
		for _, m := range members {
			g.Members = append(g.Members, domain.UserAvailability{
				UserID:    m.userID,
				Intervals: availability[m.sourceID],
			})
		}
	}

	return groups, nil
}

// fetchSources loads every source concurrently. The returned map is local to
// the request and each slice is sorted by (start, end).
func (c *Collector) fetchSources(ctx context.Context, sources []domain.SourceID) (map[domain.SourceID][]domain.Interval, error) {
	result := make(map[domain.SourceID][]domain.Interval, len(sources))
	if len(sources) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, sourceID := range sources {
		g.Go(func() error {
			intervals, err := c.intervals.GetIntervals(gctx, sourceID)
			if err != nil {
				return err
			}

			sorted := slices.Clone(intervals)
			slices.SortFunc(sorted, func(a, b domain.Interval) int {
				if cmp := a.Start.Compare(b.Start); cmp != 0 {
					return cmp
				}
				return a.End.Compare(b.End)
			})

			mu.Lock()
			result[sourceID] = sorted
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to fetch availability",
			slog.Int("source_count", len(sources)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return result, nil
}
