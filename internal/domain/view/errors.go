package view

import "errors"

// Sentinel kinds shared by the service and its transports.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrCannotCompare  = errors.New("exactly two players must be selected to compare")
	ErrMissingPlayer  = errors.New("player name is required")
)
