package domain

import (
	"time"
)

// GroupCoverage lists the members of one group that cover a window.
type GroupCoverage struct {
	GroupID          GroupID  `json:"id"`
	Name             string   `json:"name"`
	AvailableUserIDs []UserID `json:"available_users"`
	Count            int      `json:"count"`
	GroupSize        int      `json:"group_size"`
}

// MatchResult is a window every requested group can attend.
// Groups is in request order.
type MatchResult struct {
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Groups []GroupCoverage `json:"groups"`
}

func (m MatchResult) Window() Window {
	return Window{Start: m.Start, End: m.End}
}

// GroupSummary describes a requested group independent of any window, so
// callers can tell an empty group apart from a group whose members are busy.
type GroupSummary struct {
	GroupID       GroupID `json:"id"`
	Name          string  `json:"name"`
	MemberCount   int     `json:"member_count"`
	EligibleCount int     `json:"eligible_count"`
	MinRequired   uint    `json:"min_required"`
}

// MatchSnapshot is a stored match response, kept for downstream consumers such
// as poll bots.
type MatchSnapshot struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Matches   []MatchResult  `json:"matches"`
	Groups    []GroupSummary `json:"groups"`
}
