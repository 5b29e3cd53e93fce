package repository

import "errors"

var (
	ErrDatabaseConnection  = errors.New("database connection error")
	ErrRedisConnection     = errors.New("redis connection error")
	ErrInvalidSnapshotData = errors.New("invalid match snapshot data")
	ErrInvalidSlotData     = errors.New("invalid time slot data")
)
