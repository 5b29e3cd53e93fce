package domain

import "context"

//go:generate mockgen -source=availability_repository.go -destination=availability_repository_mock.go -package=domain

// RosterRepository returns ErrGroupNotFound for unknown groups.
type RosterRepository interface {
	GetRoster(ctx context.Context, groupID GroupID) (*Roster, error)
}

// UserRepository returns ErrUserNotFound for unknown users.
type UserRepository interface {
	GetUser(ctx context.Context, userID UserID) (*User, error)
}

// IntervalRepository returns an empty slice for a source without slots.
type IntervalRepository interface {
	GetIntervals(ctx context.Context, sourceID SourceID) ([]Interval, error)
}
