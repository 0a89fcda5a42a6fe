package selection

// Option applies a configuration option to a Set.
type Option func(*Set)

// WithLimit sets the maximum number of members. Non-positive values are ignored.
func WithLimit(limit int) Option {
	return func(s *Set) {
		if limit > 0 {
			s.limit = limit
		}
	}
}
