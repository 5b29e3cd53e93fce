package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GroupID identifies a group. Groups are keyed by UUID.
type GroupID = uuid.UUID

// SourceID identifies an availability source (a schedule).
type SourceID = uuid.UUID

// UserID identifies a group member.
type UserID string

func (u UserID) String() string {
	return string(u)
}

// ParseGroupID parses a single group identifier.
func ParseGroupID(raw string) (GroupID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, &ValidationError{
			Field:  "group_ids",
			Reason: fmt.Sprintf("invalid group id %q", raw),
		}
	}
	return id, nil
}

// ParseGroupIDs parses a comma separated list of group identifiers.
func ParseGroupIDs(raw string) ([]GroupID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ValidationError{Field: "group_ids", Reason: "at least one group id must be provided"}
	}

	parts := strings.Split(raw, ",")
	ids := make([]GroupID, 0, len(parts))
	for _, part := range parts {
		id, err := ParseGroupID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Roster is a group as the roster store knows it.
type Roster struct {
	GroupID   GroupID
	Name      string
	MemberIDs []UserID
}

// User is a roster member. SourceID is nil when the user has not linked a schedule.
type User struct {
	ID       UserID
	SourceID *SourceID
}

// UserAvailability holds every interval a user is free during.
type UserAvailability struct {
	UserID    UserID
	Intervals []Interval
}

// Covers reports whether any of the user's intervals fully contains w.
// Intervals may be in any order.
func (u UserAvailability) Covers(w Window) bool {
	for _, iv := range u.Intervals {
		if iv.Contains(w) {
			return true
		}
	}
	return false
}

// Group is the per-request view of a group: its roster size plus the
// availability of every member that has an availability source.
type Group struct {
	ID          GroupID
	Name        string
	MemberCount int
	Members     []UserAvailability
}

// EligibleCount is the number of members that can ever cover a window.
func (g *Group) EligibleCount() int {
	return len(g.Members)
}
