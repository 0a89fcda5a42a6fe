package watch

import (
	"time"

	"github.com/okian/standings/pkg/logger"
)

// Option applies a configuration option to the Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must stay quiet before the callback runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}
