package coverage

import (
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

// Minimums holds the minimum attendance per group.
type Minimums struct {
	Default  uint
	PerGroup map[domain.GroupID]uint
}

// For returns the minimum for a group, falling back to Default.
func (m Minimums) For(id domain.GroupID) uint {
	if v, ok := m.PerGroup[id]; ok {
		return v
	}
	return m.Default
}

// Evaluator decides, for each candidate window, whether every group has
// enough covering members. Implementations must be pure and must emit
// results in the order of the input windows.
type Evaluator interface {
	Evaluate(windows []domain.Window, groups []*domain.Group, minimums Minimums) []domain.MatchResult
	Name() string
}

// cover returns the coverage of one group for one window. Member order follows
// the roster.
func cover(g *domain.Group, w domain.Window) domain.GroupCoverage {
	available := make([]domain.UserID, 0, len(g.Members))
	for _, member := range g.Members {
		if member.Covers(w) {
			available = append(available, member.UserID)
		}
	}

	return domain.GroupCoverage{
		GroupID:          g.ID,
		Name:             g.Name,
		AvailableUserIDs: available,
		Count:            len(available),
		GroupSize:        g.EligibleCount(),
	}
}

func meets(c domain.GroupCoverage, minimum uint) bool {
	return uint(c.Count) >= minimum
}
