package watch

import "errors"

// Sentinel kinds for watcher errors.
var (
	ErrNoCallback = errors.New("watch callback must not be nil")
	ErrWatch      = errors.New("watch file")
)
