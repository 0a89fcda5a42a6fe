package view

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithFullGames sets the game count the "full" games filter matches.
func WithFullGames(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.fullGames = n
		}
	}
}

// WithPreviewLen sets how many characters of the system prompt the preview keeps.
func WithPreviewLen(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.previewLen = n
		}
	}
}
