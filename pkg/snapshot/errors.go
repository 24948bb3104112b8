package snapshot

import "errors"

var (
	// Snapshot operations
	ErrNotFound  = errors.New("snapshot not found")
	ErrNilEngine = errors.New("engine cannot be nil")
	ErrEmptyID   = errors.New("snapshot id cannot be empty")

	// Redis store
	ErrNilClient              = errors.New("redis client cannot be nil")
	ErrFailedToEncodeSnapshot = errors.New("failed to encode snapshot")
	ErrFailedToDecodeSnapshot = errors.New("failed to decode snapshot")
	ErrFailedToSaveSnapshot   = errors.New("failed to save snapshot")
	ErrFailedToLoadSnapshot   = errors.New("failed to load snapshot")
	ErrFailedToDeleteSnapshot = errors.New("failed to delete snapshot")
	ErrFailedToParseRedisURL  = errors.New("failed to parse redis connection string")
	ErrRedisNotReady          = errors.New("redis did not become ready within the given time period")
)
