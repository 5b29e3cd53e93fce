package coverage

import (
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

// FullEvaluator computes every group's coverage before combining the
// per-group decisions.
type FullEvaluator struct{}

func NewFullEvaluator() *FullEvaluator {
	return &FullEvaluator{}
}

func (e *FullEvaluator) Name() string {
	return "full"
}

func (e *FullEvaluator) Evaluate(windows []domain.Window, groups []*domain.Group, minimums Minimums) []domain.MatchResult {
	results := make([]domain.MatchResult, 0)

	for _, w := range windows {
		coverages := make([]domain.GroupCoverage, len(groups))
		passed := make([]bool, len(groups))

		for i, g := range groups {
			coverages[i] = cover(g, w)
			passed[i] = meets(coverages[i], minimums.For(g.ID))
		}

		if !all(passed) {
			continue
		}

		results = append(results, domain.MatchResult{
			Start:  w.Start,
			End:    w.End,
			Groups: coverages,
		})
	}

	return results
}

func all(values []bool) bool {
	for _, v := range values {
		if !v {
			return false
		}
	}
	return true
}
