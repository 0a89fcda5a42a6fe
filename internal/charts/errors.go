package charts

import "errors"

// Sentinel kinds for chart errors.
var (
	ErrUnknownChart = errors.New("unknown chart")
	ErrRender       = errors.New("render chart")
)
