package sampledata

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/okian/standings/pkg/logger"
)

// ErrInvalidConfig reports unusable generation parameters.
var ErrInvalidConfig = errors.New("invalid generation config")

// Validate checks the parameters Run relies on.
func (c *Config) Validate() error {
	switch {
	case c.OutDir == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	case c.Players < 1:
		return fmt.Errorf("%w: players must be positive", ErrInvalidConfig)
	case c.Games < 1:
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	case c.PartialRatio < 0 || c.PartialRatio > 1:
		return fmt.Errorf("%w: partial ratio must be within [0, 1]", ErrInvalidConfig)
	case c.MissingRatio < 0 || c.MissingRatio > 1:
		return fmt.Errorf("%w: missing ratio must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// Run generates a data set into OutDir, verifies it through the loader and,
// when BaseURL is set, against a running dashboard.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "generating tournament data",
		logger.String("outDir", config.OutDir),
		logger.Int("players", config.Players),
		logger.Int("games", config.Games),
		logger.Any("seed", config.Seed))

	// Step 1: Generate players and play the tournament
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	players := generatePlayers(rng, config)
	records, played := playTournament(rng, players, config)
	stats.PlayersGenerated = len(players)
	stats.GamesPlayed = played

	if config.Verbose {
		for _, r := range records {
			log.Debug(ctx, "player",
				logger.Int("rank", r.Rank),
				logger.String("player", r.Player),
				logger.Float64("mu", r.RatingMu),
				logger.Int("games", r.Games))
		}
	}

	// Step 2: Write the data set
	written, err := writeDataSet(ctx, config, players, records)
	if err != nil {
		return stats, fmt.Errorf("writing data set failed: %w", err)
	}
	stats.ConfigsWritten = written
	stats.ConfigsSkipped = len(players) - written

	// Step 3: Read it back the way the dashboard does
	if err := verifyOutput(ctx, config, stats); err != nil {
		return stats, fmt.Errorf("verification failed: %w", err)
	}

	// Step 4: Optionally check a running dashboard
	if config.BaseURL != "" {
		if err := verifyService(ctx, config, stats); err != nil {
			return stats, err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return stats, nil
}

// displayFinalStats logs the run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "final statistics",
		logger.Int("playersGenerated", stats.PlayersGenerated),
		logger.Int("gamesPlayed", stats.GamesPlayed),
		logger.Int("configsWritten", stats.ConfigsWritten),
		logger.Int("configsSkipped", stats.ConfigsSkipped),
		logger.Duration("duration", stats.Duration))
}
