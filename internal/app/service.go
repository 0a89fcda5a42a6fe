// Package service is the dashboard controller: it owns the loaded standings,
// the view state and every operation the HTTP API exposes.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/standings/internal/adapters/repository"
	"github.com/okian/standings/internal/adapters/source"
	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/types"
	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/pkg/logger"
	"github.com/okian/standings/pkg/metrics"
)

// Source supplies standings and per-player configs.
type Source interface {
	Results(ctx context.Context) ([]model.PlayerRecord, error)
	Configs(ctx context.Context, players []string, sink source.ConfigSink) (source.Report, error)
}

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex
	// reloadMu serializes whole reloads without blocking readers on s.mu.
	reloadMu sync.Mutex

	// Core components
	store  repository.Store
	source Source
	themes ThemeStore
	engine *view.Engine

	// State
	state    view.State
	started  bool
	loadErr  error
	loadedAt time.Time
	report   source.Report

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:  repository.NewMemoryStore(),
		themes: &memoryThemeStore{},
		engine: view.NewEngine(),
		state:  view.NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start restores the theme and performs the initial load. A standings load
// failure is returned and the service stays unstarted.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.source == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: no source configured", ErrNotStarted)
	}

	theme, err := s.themes.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "theme preference unreadable, using light", logger.Error(err))
	}
	s.state.Theme = theme
	s.mu.Unlock()

	s.logger.Info(ctx, "starting dashboard service...")
	if err := s.Reload(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("players", s.store.Count(ctx)),
		logger.String("theme", string(theme)))
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Reload reads the standings and configs again. On failure the previous data
// stays in place and the error is reported by View until a reload succeeds.
// Concurrent calls run one after another, so the last caller's data wins.
func (s *Service) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	records, err := s.source.Results(ctx)
	if err != nil {
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		metrics.RecordError("service", "load")
		s.log().Error(ctx, "standings load failed", logger.Error(err))
		return err
	}

	if err := s.store.Load(ctx, records); err != nil {
		return fmt.Errorf("store records: %w", err)
	}

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Player
	}
	report, err := s.source.Configs(ctx, names, s.store)
	if err != nil {
		s.log().Warn(ctx, "config load interrupted", logger.Error(err))
	}

	s.mu.Lock()
	s.loadErr = nil
	s.loadedAt = time.Now()
	s.report = report
	s.mu.Unlock()

	s.log().Info(ctx, "standings ready",
		logger.Int("players", len(records)),
		logger.Int("configs", report.Loaded),
		logger.Duration("took", time.Since(start)))
	return nil
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		return logger.Nop()
	}
	return s.logger
}

// View renders the table for the current state.
func (s *Service) View(ctx context.Context) view.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Now()
	records := s.store.Records(ctx)
	rows := s.engine.Render(records, s.store.Configs(ctx), s.state)
	metrics.RecordRender(float64(time.Since(start).Microseconds())/1000, len(rows))

	resp := view.Response{
		Rows:     rows,
		Settings: s.state.Settings(),
		Stats:    s.store.Stats(ctx),
		Total:    len(records),
		Shown:    len(rows),
		LoadedAt: s.loadedAt,
	}
	if s.loadErr != nil {
		resp.Error = s.loadErr.Error()
	}
	return resp
}

// Settings returns the current view settings.
func (s *Service) Settings(_ context.Context) view.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings()
}

// Update applies a partial settings change.
func (s *Service) Update(ctx context.Context, p view.Patch) view.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, field := range s.state.Apply(p) {
		metrics.RecordViewMutation(field)
	}
	s.log().Debug(ctx, "view updated", logger.Any("settings", s.state.Settings()))
	return s.state.Settings()
}

// TogglePin pins name, or unpins it when it is already pinned.
func (s *Service) TogglePin(_ context.Context, name string) view.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Pin.Toggle(name)
	metrics.RecordViewMutation("pin")
	return s.state.Settings()
}

// ToggleSelection adds or removes name from the comparison set. Adding a
// third name evicts the oldest.
func (s *Service) ToggleSelection(ctx context.Context, name string) view.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if evicted, ok := s.state.Selection.Toggle(name); ok {
		metrics.RecordSelectionEviction()
		s.log().Debug(ctx, "selection evicted", logger.String("player", evicted))
	}
	metrics.RecordViewMutation("selection")
	return s.state.Settings()
}

// SelectAll replaces the selection with the first two rows of the filtered
// and sorted list.
func (s *Service) SelectAll(ctx context.Context) view.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.engine.Select(s.store.Records(ctx), s.state)
	names := make([]string, len(filtered))
	for i, r := range filtered {
		names[i] = r.Player
	}
	s.state.Selection.SelectFirst(names)
	metrics.RecordViewMutation("selection")
	return s.state.Settings()
}

// ClearSelection empties the comparison set.
func (s *Service) ClearSelection(_ context.Context) view.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selection.Clear()
	metrics.RecordViewMutation("selection")
	return s.state.Settings()
}

// Theme returns the current theme.
func (s *Service) Theme(_ context.Context) types.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// ToggleTheme flips the theme and persists it. A persistence failure is
// logged; the toggle itself still applies.
func (s *Service) ToggleTheme(ctx context.Context) types.Theme {
	s.mu.Lock()
	s.state.Theme = s.state.Theme.Toggle()
	theme := s.state.Theme
	s.mu.Unlock()

	metrics.RecordThemeToggle()
	if err := s.themes.Save(ctx, theme); err != nil {
		metrics.RecordError("service", "theme_save")
		s.log().Warn(ctx, "theme preference not saved", logger.Error(err))
	}
	return theme
}

// Stats returns the summary of the loaded standings.
func (s *Service) Stats(ctx context.Context) model.Stats {
	return s.store.Stats(ctx)
}

// LoadReport returns the outcome of the last config load.
func (s *Service) LoadReport(_ context.Context) source.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx := context.Background()
	return map[string]any{
		"started":        s.started,
		"players":        s.store.Count(ctx),
		"configsLoaded":  s.report.Loaded,
		"configsMissing": s.report.Missing,
		"configsFailed":  s.report.Failed,
		"loadedAt":       s.loadedAt,
		"loadError":      s.loadErr != nil,
	}
}
