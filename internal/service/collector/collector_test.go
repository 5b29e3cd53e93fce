package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

var (
	groupA  = uuid.MustParse("6f1d2c3b-4a59-4e68-9d7c-0b1a2f3e4d5c")
	groupB  = uuid.MustParse("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d")
	source1 = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	source2 = uuid.MustParse("22222222-2222-4222-8222-222222222222")
)

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
}

func sourcePtr(id domain.SourceID) *domain.SourceID {
	return &id
}

type mocks struct {
	rosters   *domain.MockRosterRepository
	users     *domain.MockUserRepository
	intervals *domain.MockIntervalRepository
}

func newCollector(t *testing.T) (*Collector, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		rosters:   domain.NewMockRosterRepository(ctrl),
		users:     domain.NewMockUserRepository(ctrl),
		intervals: domain.NewMockIntervalRepository(ctrl),
	}
	return NewCollector(m.rosters, m.users, m.intervals, 2, nil), m
}

func TestCollect_EmptyGroupIDs(t *testing.T) {
	c, _ := newCollector(t)

	_, err := c.Collect(context.Background(), nil)

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCollect_GroupNotFound(t *testing.T) {
	c, m := newCollector(t)

	m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).Return(nil, domain.ErrGroupNotFound)

	_, err := c.Collect(context.Background(), []domain.GroupID{groupA, groupB})

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Entity != "group" || nf.ID != groupA.String() {
		t.Errorf("got %s/%s, want group/%s", nf.Entity, nf.ID, groupA)
	}
}

func TestCollect_UserNotFound(t *testing.T) {
	c, m := newCollector(t)

	m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
		Return(&domain.Roster{GroupID: groupA, Name: "raid", MemberIDs: []domain.UserID{"ghost"}}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("ghost")).Return(nil, domain.ErrUserNotFound)

	_, err := c.Collect(context.Background(), []domain.GroupID{groupA})

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Entity != "user" || nf.ID != "ghost" {
		t.Errorf("got %s/%s, want user/ghost", nf.Entity, nf.ID)
	}
}

func TestCollect_DataAccessErrorsPropagateUnchanged(t *testing.T) {
	storageErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(m mocks)
	}{
		{
			name: "roster lookup",
			setup: func(m mocks) {
				m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).Return(nil, storageErr)
			},
		},
		{
			name: "user lookup",
			setup: func(m mocks) {
				m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
					Return(&domain.Roster{GroupID: groupA, MemberIDs: []domain.UserID{"u1"}}, nil)
				m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u1")).Return(nil, storageErr)
			},
		},
		{
			name: "interval lookup",
			setup: func(m mocks) {
				m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
					Return(&domain.Roster{GroupID: groupA, MemberIDs: []domain.UserID{"u1"}}, nil)
				m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u1")).
					Return(&domain.User{ID: "u1", SourceID: sourcePtr(source1)}, nil)
				m.intervals.EXPECT().GetIntervals(gomock.Any(), source1).Return(nil, storageErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newCollector(t)
			tt.setup(m)

			groups, err := c.Collect(context.Background(), []domain.GroupID{groupA})
			if err != storageErr {
				t.Errorf("expected storage error unchanged, got %v", err)
			}
			if groups != nil {
				t.Errorf("expected no groups on error, got %v", groups)
			}
		})
	}
}

func TestCollect_ExcludesMembersWithoutSource(t *testing.T) {
	c, m := newCollector(t)

	m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
		Return(&domain.Roster{GroupID: groupA, Name: "raid", MemberIDs: []domain.UserID{"u1", "u2", "u3"}}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u1")).
		Return(&domain.User{ID: "u1", SourceID: sourcePtr(source1)}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u2")).
		Return(&domain.User{ID: "u2"}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u3")).
		Return(&domain.User{ID: "u3", SourceID: sourcePtr(source2)}, nil)
	m.intervals.EXPECT().GetIntervals(gomock.Any(), source1).
		Return([]domain.Interval{{Start: at(9), End: at(10)}}, nil)
	m.intervals.EXPECT().GetIntervals(gomock.Any(), source2).
		Return([]domain.Interval{}, nil)

	groups, err := c.Collect(context.Background(), []domain.GroupID{groupA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := groups[groupA]
	if g == nil {
		t.Fatal("group missing from result")
	}
	if g.Name != "raid" {
		t.Errorf("Name = %q, want raid", g.Name)
	}
	if g.MemberCount != 3 {
		t.Errorf("MemberCount = %d, want 3", g.MemberCount)
	}
	if len(g.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(g.Members))
	}
	if g.Members[0].UserID != "u1" || g.Members[1].UserID != "u3" {
		t.Errorf("members out of roster order: %v", g.Members)
	}
	if len(g.Members[1].Intervals) != 0 {
		t.Errorf("u3 should have no intervals, got %v", g.Members[1].Intervals)
	}
}

func TestCollect_SharedSourceFetchedOnce(t *testing.T) {
	c, m := newCollector(t)

	m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
		Return(&domain.Roster{GroupID: groupA, Name: "a", MemberIDs: []domain.UserID{"u1", "u2"}}, nil)
	m.rosters.EXPECT().GetRoster(gomock.Any(), groupB).
		Return(&domain.Roster{GroupID: groupB, Name: "b", MemberIDs: []domain.UserID{"u3"}}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u1")).
		Return(&domain.User{ID: "u1", SourceID: sourcePtr(source1)}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u2")).
		Return(&domain.User{ID: "u2", SourceID: sourcePtr(source1)}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u3")).
		Return(&domain.User{ID: "u3", SourceID: sourcePtr(source1)}, nil)
	m.intervals.EXPECT().GetIntervals(gomock.Any(), source1).
		Return([]domain.Interval{{Start: at(9), End: at(12)}}, nil).
		Times(1)

	groups, err := c.Collect(context.Background(), []domain.GroupID{groupA, groupB})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []domain.GroupID{groupA, groupB} {
		for _, member := range groups[id].Members {
			if len(member.Intervals) != 1 || !member.Intervals[0].Start.Equal(at(9)) {
				t.Errorf("member %s has intervals %v", member.UserID, member.Intervals)
			}
		}
	}
}

func TestCollect_DuplicateGroupIDsLookedUpOnce(t *testing.T) {
	c, m := newCollector(t)

	m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
		Return(&domain.Roster{GroupID: groupA, Name: "a"}, nil).
		Times(1)

	groups, err := c.Collect(context.Background(), []domain.GroupID{groupA, groupA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("got %d groups, want 1", len(groups))
	}
	if groups[groupA].Members == nil {
		t.Error("Members should be an empty slice, not nil")
	}
}

func TestCollect_SortsIntervals(t *testing.T) {
	c, m := newCollector(t)

	unsorted := []domain.Interval{
		{Start: at(14), End: at(15)},
		{Start: at(9), End: at(11)},
		{Start: at(9), End: at(10)},
	}

	m.rosters.EXPECT().GetRoster(gomock.Any(), groupA).
		Return(&domain.Roster{GroupID: groupA, MemberIDs: []domain.UserID{"u1"}}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), domain.UserID("u1")).
		Return(&domain.User{ID: "u1", SourceID: sourcePtr(source1)}, nil)
	m.intervals.EXPECT().GetIntervals(gomock.Any(), source1).Return(unsorted, nil)

	groups, err := c.Collect(context.Background(), []domain.GroupID{groupA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := groups[groupA].Members[0].Intervals
	wantStarts := []time.Time{at(9), at(9), at(14)}
	wantEnds := []time.Time{at(10), at(11), at(15)}
	for i := range got {
		if !got[i].Start.Equal(wantStarts[i]) || !got[i].End.Equal(wantEnds[i]) {
			t.Errorf("interval[%d] = [%v, %v)", i, got[i].Start, got[i].End)
		}
	}
	if !unsorted[0].Start.Equal(at(14)) {
		t.Error("collector reordered the repository's slice")
	}
}
