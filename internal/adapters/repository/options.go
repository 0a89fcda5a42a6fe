package repository

import (
	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/pkg/logger"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets the logger used for load and attach events.
func WithLogger(l logger.Logger) Option {
	return func(s *MemoryStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecords seeds the store with an initial record list.
func WithRecords(records []model.PlayerRecord) Option {
	return func(s *MemoryStore) {
		s.seed = records
	}
}
