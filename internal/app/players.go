package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/okian/standings/internal/adapters/repository"
	"github.com/okian/standings/internal/charts"
	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/internal/export"
	"github.com/okian/standings/pkg/metrics"
)

// Player returns the detail view for name.
func (s *Service) Player(ctx context.Context, name string) (view.PlayerDetail, error) {
	if name == "" {
		return view.PlayerDetail{}, ErrMissingPlayer
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detail(ctx, name)
}

func (s *Service) detail(ctx context.Context, name string) (view.PlayerDetail, error) {
	rec, err := s.store.Find(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return view.PlayerDetail{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return view.PlayerDetail{}, err
	}
	cfg, ok := s.store.Config(ctx, name)
	pinned, _ := s.state.Pin.Pinned()
	return view.PlayerDetail{
		Record:    rec,
		Model:     cfg.ModelInfo(),
		Prompts:   cfg.Prompts(),
		HasConfig: ok,
		Pinned:    pinned == name,
		Selected:  s.state.Selection.Has(name),
	}, nil
}

// Compare returns both selected players. It fails unless exactly two are
// selected and both are still present in the standings.
func (s *Service) Compare(ctx context.Context) (view.Comparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.compare(ctx)
}

func (s *Service) compare(ctx context.Context) (view.Comparison, error) {
	if !s.state.Selection.CanCompare() {
		return view.Comparison{}, ErrCannotCompare
	}
	var c view.Comparison
	for i, name := range s.state.Selection.Names() {
		d, err := s.detail(ctx, name)
		if err != nil {
			return view.Comparison{}, err
		}
		c.Players[i] = d
	}
	return c, nil
}

// Export writes the currently filtered records, in sort order without the
// pin, in the given format.
func (s *Service) Export(ctx context.Context, w io.Writer, format export.Format) error {
	s.mu.RLock()
	records := s.engine.Select(s.store.Records(ctx), s.state)
	s.mu.RUnlock()

	lookup := func(player string) model.ModelInfo {
		cfg, _ := s.store.Config(ctx, player)
		return cfg.ModelInfo()
	}
	if err := export.Write(w, format, records, lookup); err != nil {
		metrics.RecordError("service", "export")
		return err
	}
	metrics.RecordExport(string(format))
	return nil
}

// Chart renders the named chart page. The player chart needs a player name;
// the compare chart uses the current selection.
func (s *Service) Chart(ctx context.Context, w io.Writer, name, player string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := charts.DefaultChartConfig()
	cfg.Theme = s.state.Theme

	switch name {
	case charts.NameWinRate:
		return charts.RenderWinRate(w, s.store.Records(ctx), cfg)
	case charts.NameRatings:
		return charts.RenderRatings(w, s.store.Records(ctx), cfg)
	case charts.NameGames:
		return charts.RenderGames(w, s.store.Records(ctx), cfg)
	case charts.NamePlayer:
		if player == "" {
			return ErrMissingPlayer
		}
		d, err := s.detail(ctx, player)
		if err != nil {
			return err
		}
		return charts.RenderPlayer(w, d.Record, cfg)
	case charts.NameCompare:
		c, err := s.compare(ctx)
		if err != nil {
			return err
		}
		return charts.RenderCompare(w, c.Players[0].Record, c.Players[1].Record, cfg)
	default:
		return fmt.Errorf("%w: %s", charts.ErrUnknownChart, name)
	}
}
