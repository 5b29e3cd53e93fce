package coverage

import (
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

// ShortCircuitEvaluator rejects a window as soon as one group falls short.
// Rejection is monotonic, so group order never changes the outcome.
type ShortCircuitEvaluator struct{}

func NewShortCircuitEvaluator() *ShortCircuitEvaluator {
	return &ShortCircuitEvaluator{}
}

func (e *ShortCircuitEvaluator) Name() string {
	return "short_circuit"
}

func (e *ShortCircuitEvaluator) Evaluate(windows []domain.Window, groups []*domain.Group, minimums Minimums) []domain.MatchResult {
	results := make([]domain.MatchResult, 0)

	for _, w := range windows {
		coverages := make([]domain.GroupCoverage, 0, len(groups))
		accepted := true

		for _, g := range groups {
			c := cover(g, w)
			if !meets(c, minimums.For(g.ID)) {
				accepted = false
				break
			}
			coverages = append(coverages, c)
		}

		if !accepted {
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
