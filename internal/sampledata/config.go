// Package sampledata generates synthetic tournament data directories for
// demos and load checks, and verifies them against the loader and a running
// dashboard.
package sampledata

import (
	"time"

	"github.com/okian/standings/internal/domain/model"
)

// Config holds configuration for a generation run.
type Config struct {
	OutDir       string        // Directory the data set is written to
	Players      int           // Number of players to generate
	Games        int           // Games in a full schedule
	PartialRatio float64       // Share of players that stop early
	MissingRatio float64       // Share of players without a config document
	Seed         uint64        // PRNG seed; equal seeds give equal output
	Workers      int           // Concurrent config document writers
	BaseURL      string        // Running dashboard to verify against; empty skips it
	Timeout      time.Duration // HTTP request timeout
	Verbose      bool          // Log every player
}

// Player is one generated participant before the tournament is played.
type Player struct {
	Name     string
	Strength float64
	Config   *model.PlayerConfig // nil when the player ships without a config
}

// Stats holds run statistics.
type Stats struct {
	PlayersGenerated int
	GamesPlayed      int
	ConfigsWritten   int
	ConfigsSkipped   int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
