package service

import (
	"errors"

	"github.com/okian/standings/internal/domain/view"
)

// Sentinel kinds for service errors.
var (
	ErrNotStarted    = errors.New("service not started")
	ErrNotFound      = view.ErrPlayerNotFound
	ErrCannotCompare = view.ErrCannotCompare
	ErrMissingPlayer = view.ErrMissingPlayer
)
