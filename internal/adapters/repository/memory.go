package repository

import (
	"context"
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/pkg/logger"
	"github.com/okian/standings/pkg/metrics"
)

// snapshot is the immutable record list published on every Load. Readers
// never take a lock for it.
type snapshot struct {
	records []model.PlayerRecord
	byName  map[string]int
	stats   model.Stats
}

// MemoryStore is an in-memory Store. Records are swapped atomically as a
// whole; configs live in a mutex-guarded side table.
type MemoryStore struct {
	snapshot atomic.Pointer[snapshot]

	mu      sync.RWMutex
	configs map[string]*model.PlayerConfig

	log  logger.Logger
	seed []model.PlayerRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store, or one seeded via WithRecords.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		configs: make(map[string]*model.PlayerConfig),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snapshot.Store(buildSnapshot(s.seed))
	s.seed = nil
	return s
}

func buildSnapshot(records []model.PlayerRecord) *snapshot {
	snap := &snapshot{
		records: slices.Clone(records),
		byName:  make(map[string]int, len(records)),
	}
	for i, r := range snap.records {
		// First occurrence wins for lookups; the table still shows every row.
		if _, dup := snap.byName[r.Player]; !dup {
			snap.byName[r.Player] = i
		}
	}
	snap.stats = computeStats(snap.records)
	return snap
}

// computeStats skips NaN win rates in the mean so one malformed row does not
// blank the summary.
func computeStats(records []model.PlayerRecord) model.Stats {
	st := model.Stats{Players: len(records)}
	if len(records) == 0 {
		return st
	}
	var sum float64
	var n int
	st.TopRatingMu = math.Inf(-1)
	for _, r := range records {
		st.TotalGames += r.Games
		if !math.IsNaN(r.WinRate) {
			sum += r.WinRate
			n++
		}
		if !math.IsNaN(r.RatingMu) && r.RatingMu > st.TopRatingMu {
			st.TopRatingMu = r.RatingMu
		}
	}
	if n > 0 {
		st.MeanWinRate = sum / float64(n)
	}
	if math.IsInf(st.TopRatingMu, -1) {
		st.TopRatingMu = 0
	}
	return st
}

// Load replaces the records and clears the config table.
func (s *MemoryStore) Load(ctx context.Context, records []model.PlayerRecord) error {
	if err := ctx.Err(); err != nil {
		return ErrContextEnded
	}
	snap := buildSnapshot(records)

	s.mu.Lock()
	s.snapshot.Store(snap)
	clear(s.configs)
	s.mu.Unlock()

	metrics.UpdateRecordsLoaded(len(snap.records))
	metrics.UpdateConfigsAttached(0)
	s.log.Debug(ctx, "records loaded", logger.Int("count", len(snap.records)))
	return nil
}

// AttachConfig stores cfg for player, replacing any previous value.
func (s *MemoryStore) AttachConfig(ctx context.Context, player string, cfg *model.PlayerConfig) error {
	if player == "" {
		metrics.RecordError("repository", "empty_player")
		return ErrEmptyPlayer
	}
	if cfg == nil {
		metrics.RecordError("repository", "nil_config")
		return ErrNilConfig
	}

	s.mu.Lock()
	s.configs[player] = cfg
	n := len(s.configs)
	s.mu.Unlock()

	metrics.UpdateConfigsAttached(n)
	return nil
}

// Records returns a copy of the current records.
func (s *MemoryStore) Records(_ context.Context) []model.PlayerRecord {
	return slices.Clone(s.snapshot.Load().records)
}

// Configs returns a shallow copy of the config table.
func (s *MemoryStore) Configs(_ context.Context) map[string]*model.PlayerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.configs)
}

// Find looks a record up by exact player name.
func (s *MemoryStore) Find(_ context.Context, player string) (model.PlayerRecord, error) {
	snap := s.snapshot.Load()
	i, ok := snap.byName[player]
	if !ok {
		metrics.RecordError("repository", "not_found")
		return model.PlayerRecord{}, ErrNotFound
	}
	return snap.records[i], nil
}

// Config returns the config attached to player.
func (s *MemoryStore) Config(_ context.Context, player string) (*model.PlayerConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[player]
	return cfg, ok
}

// Count returns the number of records.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.snapshot.Load().records)
}

// Stats returns the record summary plus the attached config count.
func (s *MemoryStore) Stats(_ context.Context) model.Stats {
	st := s.snapshot.Load().stats
	s.mu.RLock()
	st.ConfigsLoaded = len(s.configs)
	s.mu.RUnlock()
	return st
}
