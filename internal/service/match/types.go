package match

import (
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

// Request asks for windows in which every group in GroupIDs can meet.
// Nil pointers fall back to the configured defaults.
type Request struct {
	GroupIDs      []domain.GroupID
	MinPerGroup   *uint
	GroupMinimums map[domain.GroupID]uint
	MaxResults    *uint
}

type Response struct {
	MatchID        string                `json:"match_id,omitempty"`
	Matches        []domain.MatchResult  `json:"matches"`
	Groups         []domain.GroupSummary `json:"groups"`
	CandidateCount int                   `json:"candidate_count"`
	AcceptedCount  int                   `json:"accepted_count"`
}
