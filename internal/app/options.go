package service

import (
	"github.com/okian/standings/internal/adapters/repository"
	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets where standings and configs are read from.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithStore replaces the in-memory record store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithThemeStore sets where the theme preference is persisted.
func WithThemeStore(ts ThemeStore) Option {
	return func(s *Service) {
		if ts != nil {
			s.themes = ts
		}
	}
}

// WithEngine sets the view engine tuning.
func WithEngine(e *view.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}
