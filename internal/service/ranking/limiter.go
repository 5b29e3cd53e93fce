package ranking

import (
	"slices"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

// DefaultCount is the number of results returned when the caller does not ask
// for a specific count.
const DefaultCount = 5

// Limit orders results by (start, end) and keeps at most count of them.
// The sort is stable, so entries with equal windows keep their input order.
// The input slice is not modified.
func Limit(results []domain.MatchResult, count uint) []domain.MatchResult {
	if count == 0 || len(results) == 0 {
		return []domain.MatchResult{}
	}

	ordered := slices.Clone(results)
	slices.SortStableFunc(ordered, func(a, b domain.MatchResult) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})

	if uint(len(ordered)) > count {
		ordered = ordered[:count]
	}

	return ordered
}
