package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound     = errors.New("player not found")
	ErrEmptyPlayer  = errors.New("player name must not be empty")
	ErrNilConfig    = errors.New("player config must not be nil")
	ErrContextEnded = errors.New("store operation cancelled")
)
