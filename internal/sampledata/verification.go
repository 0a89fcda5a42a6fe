package sampledata

import (
	"context"
	"fmt"
	"os"

	"github.com/okian/standings/internal/adapters/repository"
	"github.com/okian/standings/internal/adapters/source"
	"github.com/okian/standings/pkg/logger"
)

// verifyOutput reads OutDir back through the dashboard loader and checks it
// against what was generated.
func verifyOutput(ctx context.Context, cfg *Config, stats *Stats) error {
	loader := source.NewLoader(os.DirFS(cfg.OutDir), source.WithConcurrency(max(cfg.Workers, 1)))

	records, err := loader.Results(ctx)
	if err != nil {
		return fmt.Errorf("generated results do not load: %w", err)
	}
	if len(records) != stats.PlayersGenerated {
		return fmt.Errorf("loaded %d players, generated %d", len(records), stats.PlayersGenerated)
	}
	for i, r := range records {
		if r.Malformed {
			return fmt.Errorf("row %d (%s) is malformed", i+1, r.Player)
		}
		if r.Rank != i+1 {
			return fmt.Errorf("row %d has rank %d", i+1, r.Rank)
		}
		if r.Wins+r.Draws+r.Losses != r.Games {
			return fmt.Errorf("%s: outcomes do not add up to %d games", r.Player, r.Games)
		}
	}

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Player
	}
	store := repository.NewMemoryStore(repository.WithRecords(records))
	report, err := loader.Configs(ctx, names, store)
	if err != nil {
		return fmt.Errorf("config load interrupted: %w", err)
	}
	if report.Failed > 0 || report.IndexErr != nil {
		return fmt.Errorf("config load reported %d failures (index error: %v)", report.Failed, report.IndexErr)
	}
	if report.Loaded != stats.ConfigsWritten || report.Missing != stats.ConfigsSkipped {
		return fmt.Errorf("configs loaded=%d missing=%d, want %d and %d",
			report.Loaded, report.Missing, stats.ConfigsWritten, stats.ConfigsSkipped)
	}

	logger.Get().Info(ctx, "generated data set verified",
		logger.Int("players", len(records)),
		logger.Int("configs", report.Loaded))
	return nil
}
