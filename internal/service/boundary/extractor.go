package boundary

import (
	"slices"
	"time"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

// Extract splits the timeline spanned by every interval of every group into
// the coarsest windows over which no member's availability changes.
// Attendee sets can only change at an interval boundary, so adjacent distinct
// boundaries delimit one window each.
func Extract(groups []*domain.Group) []domain.Window {
	boundaries := collect(groups)
	if len(boundaries) < 2 {
		return []domain.Window{}
	}

	windows := make([]domain.Window, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		start, end := boundaries[i], boundaries[i+1]
		if !start.Before(end) {
			continue
		}
		windows = append(windows, domain.Window{Start: start, End: end})
	}

	return windows
}

// collect returns every interval endpoint, sorted and de-duplicated by instant.
func collect(groups []*domain.Group) []time.Time {
	var boundaries []time.Time
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, member := range g.Members {
			for _, iv := range member.Intervals {
				boundaries = append(boundaries, iv.Start.UTC(), iv.End.UTC())
			}
		}
	}

	slices.SortFunc(boundaries, func(a, b time.Time) int {
		return a.Compare(b)
	})

	return slices.CompactFunc(boundaries, func(a, b time.Time) bool {
		return a.Equal(b)
	})
}
