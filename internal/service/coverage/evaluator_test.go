package coverage

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-group-matching/internal/config"
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
	"github.com/KasumiMercury/primind-group-matching/internal/service/boundary"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func hm(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func member(id string, ivs ...domain.Interval) domain.UserAvailability {
	return domain.UserAvailability{UserID: domain.UserID(id), Intervals: ivs}
}

func iv(startH, endH int) domain.Interval {
	return domain.Interval{Start: hm(startH, 0), End: hm(endH, 0)}
}

func newGroup(name string, members ...domain.UserAvailability) *domain.Group {
	return &domain.Group{
		ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:        name,
		MemberCount: len(members),
		Members:     members,
	}
}

func evaluators() []Evaluator {
	return []Evaluator{NewShortCircuitEvaluator(), NewFullEvaluator()}
}

func TestEvaluate_ScenarioA(t *testing.T) {
	g1 := newGroup("g1", member("u1", iv(9, 11)))
	g2 := newGroup("g2", member("u2", iv(10, 12)))
	groups := []*domain.Group{g1, g2}

	for _, e := range evaluators() {
		t.Run(e.Name(), func(t *testing.T) {
			results := e.Evaluate(boundary.Extract(groups), groups, Minimums{Default: 1})

			if len(results) != 1 {
				t.Fatalf("got %d results, want 1 (%v)", len(results), results)
			}
			r := results[0]
			if !r.Start.Equal(hm(10, 0)) || !r.End.Equal(hm(11, 0)) {
				t.Errorf("window = [%v, %v), want [10:00, 11:00)", r.Start, r.End)
			}
			if len(r.Groups) != 2 {
				t.Fatalf("got %d group coverages, want 2", len(r.Groups))
			}
			if r.Groups[0].GroupID != g1.ID || r.Groups[1].GroupID != g2.ID {
				t.Error("group coverages are not in input order")
			}
			if !reflect.DeepEqual(r.Groups[0].AvailableUserIDs, []domain.UserID{"u1"}) {
				t.Errorf("g1 users = %v, want [u1]", r.Groups[0].AvailableUserIDs)
			}
			if !reflect.DeepEqual(r.Groups[1].AvailableUserIDs, []domain.UserID{"u2"}) {
				t.Errorf("g2 users = %v, want [u2]", r.Groups[1].AvailableUserIDs)
			}
			for _, c := range r.Groups {
				if c.Count != len(c.AvailableUserIDs) {
					t.Errorf("count %d does not match %d users", c.Count, len(c.AvailableUserIDs))
				}
			}
		})
	}
}

func TestEvaluate_UnsortedIntervals(t *testing.T) {
	g := newGroup("g1", member("u1", iv(12, 13), iv(9, 11)))
	groups := []*domain.Group{g}

	for _, e := range evaluators() {
		t.Run(e.Name(), func(t *testing.T) {
			results := e.Evaluate(boundary.Extract(groups), groups, Minimums{Default: 1})

			if len(results) != 2 {
				t.Fatalf("got %d results, want 2 (%v)", len(results), results)
			}
			if !results[0].Start.Equal(hm(9, 0)) || !results[0].End.Equal(hm(11, 0)) {
				t.Errorf("first window = [%v, %v), want [09:00, 11:00)", results[0].Start, results[0].End)
			}
			if !results[1].Start.Equal(hm(12, 0)) || !results[1].End.Equal(hm(13, 0)) {
				t.Errorf("second window = [%v, %v), want [12:00, 13:00)", results[1].Start, results[1].End)
			}
		})
	}
}

func TestEvaluate_ScenarioB(t *testing.T) {
	g1 := newGroup("g1", member("u1", iv(9, 11)))
	g2 := newGroup("g2", member("u2", iv(10, 12)))
	groups := []*domain.Group{g1, g2}

	minimums := Minimums{Default: 1, PerGroup: map[domain.GroupID]uint{g2.ID: 2}}

	for _, e := range evaluators() {
		t.Run(e.Name(), func(t *testing.T) {
			results := e.Evaluate(boundary.Extract(groups), groups, minimums)
			if len(results) != 0 {
				t.Errorf("got %d results, want 0", len(results))
			}
			if results == nil {
				t.Error("results should be an empty slice, not nil")
			}
		})
	}
}

func TestEvaluate_ScenarioC(t *testing.T) {
	// Boundaries 9, 10, 11, 12 give windows [9,10) [10,11) [11,12).
	g := newGroup("team",
		member("alice", iv(9, 11)),
		member("bob", iv(10, 12)),
		member("carol", iv(9, 10)),
	)
	groups := []*domain.Group{g}

	for _, e := range evaluators() {
		t.Run(e.Name(), func(t *testing.T) {
			results := e.Evaluate(boundary.Extract(groups), groups, Minimums{Default: 2})

			want := []struct {
				start, end int
				users      []domain.UserID
			}{
				{start: 9, end: 10, users: []domain.UserID{"alice", "carol"}},
				{start: 10, end: 11, users: []domain.UserID{"alice", "bob"}},
			}
			if len(results) != len(want) {
				t.Fatalf("got %d results, want %d (%v)", len(results), len(want), results)
			}
			for i, w := range want {
				if !results[i].Start.Equal(hm(w.start, 0)) || !results[i].End.Equal(hm(w.end, 0)) {
					t.Errorf("result[%d] window = [%v, %v)", i, results[i].Start, results[i].End)
				}
				if !reflect.DeepEqual(results[i].Groups[0].AvailableUserIDs, w.users) {
					t.Errorf("result[%d] users = %v, want %v", i, results[i].Groups[0].AvailableUserIDs, w.users)
				}
			}
		})
	}
}

func TestEvaluate_EdgeCases(t *testing.T) {
	busy := newGroup("busy", member("u1", iv(9, 10)))
	empty := newGroup("empty")
	empty.MemberCount = 3

	tests := []struct {
		name     string
		groups   []*domain.Group
		minimums Minimums
		want     int
	}{
		{
			name:     "group without eligible members rejects every window",
			groups:   []*domain.Group{busy, empty},
			minimums: Minimums{Default: 1},
			want:     0,
		},
		{
			name:     "minimum of zero always passes",
			groups:   []*domain.Group{busy, empty},
			minimums: Minimums{Default: 1, PerGroup: map[domain.GroupID]uint{empty.ID: 0}},
			want:     1,
		},
		{
			name:     "no groups accepts every window",
			groups:   nil,
			minimums: Minimums{Default: 1},
			want:     1,
		},
	}

	windows := []domain.Window{{Start: hm(9, 0), End: hm(10, 0)}}

	for _, tt := range tests {
		for _, e := range evaluators() {
			t.Run(tt.name+"/"+e.Name(), func(t *testing.T) {
				results := e.Evaluate(windows, tt.groups, tt.minimums)
				if len(results) != tt.want {
					t.Errorf("got %d results, want %d", len(results), tt.want)
				}
			})
		}
	}
}

func TestEvaluate_ZeroMinimumReportsEmptyCoverage(t *testing.T) {
	busy := newGroup("busy", member("u1", iv(9, 10)))
	idle := newGroup("idle", member("u2", iv(12, 13)))
	groups := []*domain.Group{busy, idle}
	windows := []domain.Window{{Start: hm(9, 0), End: hm(10, 0)}}

	results := NewShortCircuitEvaluator().Evaluate(windows, groups, Minimums{
		Default:  1,
		PerGroup: map[domain.GroupID]uint{idle.ID: 0},
	})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	c := results[0].Groups[1]
	if c.Count != 0 || c.AvailableUserIDs == nil || len(c.AvailableUserIDs) != 0 {
		t.Errorf("unexpected coverage for idle group: %+v", c)
	}
	if c.GroupSize != 1 {
		t.Errorf("group size = %d, want 1", c.GroupSize)
	}
}

func randomGroups(rng *rand.Rand) []*domain.Group {
	var groups []*domain.Group
	for g := 0; g < 1+rng.Intn(4); g++ {
		var members []domain.UserAvailability
		for u := 0; u < rng.Intn(5); u++ {
			var ivs []domain.Interval
			cursor := hm(8, 0).Add(time.Duration(rng.Intn(8)) * 30 * time.Minute)
			for k := 0; k < rng.Intn(3); k++ {
				end := cursor.Add(time.Duration(1+rng.Intn(6)) * 30 * time.Minute)
				ivs = append(ivs, domain.Interval{Start: cursor, End: end})
				cursor = end.Add(time.Duration(rng.Intn(4)) * 30 * time.Minute)
			}
			members = append(members, member(string(rune('a'+u)), ivs...))
		}
		grp := newGroup(string(rune('A'+g)), members...)
		groups = append(groups, grp)
	}
	return groups
}

func TestEvaluate_ShortCircuitMatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	short := NewShortCircuitEvaluator()
	full := NewFullEvaluator()

	for round := 0; round < 300; round++ {
		groups := randomGroups(rng)
		windows := boundary.Extract(groups)
		minimums := Minimums{Default: uint(rng.Intn(3))}

		a := short.Evaluate(windows, groups, minimums)
		b := full.Evaluate(windows, groups, minimums)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("round %d: short-circuit and full evaluation differ\nshort: %v\nfull:  %v", round, a, b)
		}
	}
}

func TestEvaluate_RaisingMinimumNeverGrowsResults(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	e := NewShortCircuitEvaluator()

	for round := 0; round < 200; round++ {
		groups := randomGroups(rng)
		windows := boundary.Extract(groups)

		prev := e.Evaluate(windows, groups, Minimums{Default: 0})
		for minimum := uint(1); minimum <= 4; minimum++ {
			next := e.Evaluate(windows, groups, Minimums{Default: minimum})
			if len(next) > len(prev) {
				t.Fatalf("round %d: minimum %d produced %d results, more than %d", round, minimum, len(next), len(prev))
			}
			accepted := make(map[time.Time]bool, len(prev))
			for _, r := range prev {
				accepted[r.Start] = true
			}
			for _, r := range next {
				if !accepted[r.Start] {
					t.Fatalf("round %d: window %v appeared after raising minimum to %d", round, r.Start, minimum)
				}
			}
			prev = next
		}
	}
}

func TestNewEvaluator(t *testing.T) {
	tests := []struct {
		strategy config.EvaluationStrategy
		want     string
	}{
		{strategy: config.EvaluationStrategyFull, want: "full"},
		{strategy: config.EvaluationStrategyShortCircuit, want: "short_circuit"},
		{strategy: "unknown", want: "short_circuit"},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			if got := NewEvaluator(tt.strategy).Name(); got != tt.want {
				t.Errorf("NewEvaluator(%q).Name() = %q, want %q", tt.strategy, got, tt.want)
			}
		})
	}
}
