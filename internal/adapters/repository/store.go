// Package repository holds the decoded tournament standings and the
// per-player configuration side table.
package repository

import (
	"context"

	"github.com/okian/standings/internal/domain/model"
)

// Store provides access to the loaded standings.
type Store interface {
	// Load replaces the record list and drops every attached config.
	Load(ctx context.Context, records []model.PlayerRecord) error

	// AttachConfig associates cfg with player. Attaching twice keeps the
	// latest value; attaching to an unknown player is stored but never shown.
	AttachConfig(ctx context.Context, player string, cfg *model.PlayerConfig) error

	// Records returns a copy of the records in load order.
	Records(ctx context.Context) []model.PlayerRecord

	// Configs returns a copy of the config side table.
	Configs(ctx context.Context) map[string]*model.PlayerConfig

	// Find returns the record for player, or ErrNotFound.
	Find(ctx context.Context, player string) (model.PlayerRecord, error)

	// Config returns the config for player and whether one is attached.
	Config(ctx context.Context, player string) (*model.PlayerConfig, bool)

	// Count returns the number of records.
	Count(ctx context.Context) int

	// Stats returns the summary of the current records.
	Stats(ctx context.Context) model.Stats
}
