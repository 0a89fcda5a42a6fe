package view

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/types"
)

const (
	defaultFullGames  = 12
	defaultPreviewLen = 150
	ellipsis          = "..."

	// Filter bands and tier labels share breakpoints but are tuned separately.
	filterHighMin   = 0.6
	filterMediumMin = 0.4

	tierHighMin   = 0.6
	tierMediumMin = 0.4

	highlightWinRateAbove = 0.8
	topRanks              = 3
)

// Row is one rendered table row.
type Row struct {
	model.PlayerRecord

	Highlight     types.Highlight `json:"highlight"`
	Tier          types.Tier      `json:"tier"`
	RankBadge     int             `json:"rank_badge,omitempty"`
	Pinned        bool            `json:"pinned"`
	Selected      bool            `json:"selected"`
	Model         model.ModelInfo `json:"model"`
	PromptPreview string          `json:"prompt_preview"`
}

// MarshalJSON flattens the record and its annotations into one object.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		model.RecordJSON
		Highlight     types.Highlight `json:"highlight"`
		Tier          types.Tier      `json:"tier"`
		RankBadge     int             `json:"rank_badge,omitempty"`
		Pinned        bool            `json:"pinned"`
		Selected      bool            `json:"selected"`
		Model         model.ModelInfo `json:"model"`
		PromptPreview string          `json:"prompt_preview"`
	}{
		RecordJSON:    r.PlayerRecord.JSON(),
		Highlight:     r.Highlight,
		Tier:          r.Tier,
		RankBadge:     r.RankBadge,
		Pinned:        r.Pinned,
		Selected:      r.Selected,
		Model:         r.Model,
		PromptPreview: r.PromptPreview,
	})
}

// Engine derives rows from records and a State. It holds only immutable
// tuning and is safe for concurrent use.
type Engine struct {
	fullGames  int
	previewLen int
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{fullGames: defaultFullGames, previewLen: defaultPreviewLen}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Render derives rows with the default tuning.
func Render(records []model.PlayerRecord, configs map[string]*model.PlayerConfig, st State) []Row {
	return defaultEngine.Render(records, configs, st)
}

// Render filters, sorts, lifts the pinned player to the top and annotates
// every surviving record. It never fails and never mutates its inputs.
func (e *Engine) Render(records []model.PlayerRecord, configs map[string]*model.PlayerConfig, st State) []Row {
	selected := e.Select(records, st)

	pinned, hasPin := st.Pin.Pinned()
	if hasPin {
		liftPinned(selected, pinned)
	}

	rows := make([]Row, len(selected))
	for i := range selected {
		rec := selected[i]
		cfg := configs[rec.Player]
		isPinned := hasPin && rec.Player == pinned
		rows[i] = Row{
			PlayerRecord:  rec,
			Highlight:     highlightFor(rec, isPinned, st),
			Tier:          TierFor(rec.WinRate),
			RankBadge:     rankBadge(rec.Rank),
			Pinned:        isPinned,
			Selected:      st.Selection != nil && st.Selection.Has(rec.Player),
			Model:         cfg.ModelInfo(),
			PromptPreview: e.PromptPreview(cfg),
		}
	}
	return rows
}

// Select returns the filtered records in sort order, without the pin
// override. Exports use this ordering.
func (e *Engine) Select(records []model.PlayerRecord, st State) []model.PlayerRecord {
	out := e.Filter(records, st)
	SortRecords(out, st.Sort)
	return out
}

// Filter keeps records matching the search term and both filters. The
// three predicates are independent and combined with AND.
func (e *Engine) Filter(records []model.PlayerRecord, st State) []model.PlayerRecord {
	term := strings.ToLower(st.SearchTerm)
	out := make([]model.PlayerRecord, 0, len(records))
	for _, rec := range records {
		if term != "" && !strings.Contains(strings.ToLower(rec.Player), term) {
			continue
		}
		if !matchWinRate(rec.WinRate, st.WinRate) {
			continue
		}
		if !e.matchGames(rec.Games, st.Games) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchWinRate admits a NaN win rate only under the all filter; every band
// comparison is false for NaN.
func matchWinRate(wr float64, f types.WinRateFilter) bool {
	switch f {
	case types.WinRateHigh:
		return wr >= filterHighMin
	case types.WinRateMedium:
		return wr >= filterMediumMin && wr < filterHighMin
	case types.WinRateLow:
		return wr < filterMediumMin
	default:
		return true
	}
}

func (e *Engine) matchGames(games int, f types.GamesFilter) bool {
	switch f {
	case types.GamesFull:
		return games == e.fullGames
	case types.GamesPartial:
		return games != e.fullGames
	default:
		return true
	}
}

// SortRecords orders records in place by key. The sort is stable so equal
// keys keep their prior relative order.
func SortRecords(records []model.PlayerRecord, key types.SortKey) {
	var fn func(a, b model.PlayerRecord) int
	switch key {
	case types.SortRating:
		fn = func(a, b model.PlayerRecord) int { return cmp.Compare(b.RatingMu, a.RatingMu) }
	case types.SortWinRate:
		fn = func(a, b model.PlayerRecord) int { return cmp.Compare(b.WinRate, a.WinRate) }
	case types.SortGames:
		fn = func(a, b model.PlayerRecord) int { return cmp.Compare(b.Games, a.Games) }
	default:
		fn = func(a, b model.PlayerRecord) int { return cmp.Compare(a.Rank, b.Rank) }
	}
	slices.SortStableFunc(records, fn)
}

// liftPinned moves the pinned record to index 0, shifting the records before
// it down by one. Everything else keeps its position.
func liftPinned(records []model.PlayerRecord, pinned string) {
	i := slices.IndexFunc(records, func(r model.PlayerRecord) bool { return r.Player == pinned })
	if i <= 0 {
		return
	}
	rec := records[i]
	copy(records[1:i+1], records[:i])
	records[0] = rec
}

func highlightFor(rec model.PlayerRecord, pinned bool, st State) types.Highlight {
	switch {
	case pinned:
		return types.HighlightPinned
	case st.HighlightWinRate && rec.WinRate > highlightWinRateAbove:
		return types.HighlightHighWinRate
	case st.HighlightTop3 && rec.Rank <= topRanks:
		return types.HighlightTop3
	default:
		return types.HighlightNone
	}
}

// TierFor labels a win rate. NaN lands in the low tier.
func TierFor(wr float64) types.Tier {
	switch {
	case wr >= tierHighMin:
		return types.TierHigh
	case wr >= tierMediumMin:
		return types.TierMedium
	default:
		return types.TierLow
	}
}

func rankBadge(rank int) int {
	if rank >= 1 && rank <= topRanks {
		return rank
	}
	return 0
}

// PromptPreview returns the first characters of agent0's system prompt, or
// N/A, always followed by "..." even when nothing was cut.
func (e *Engine) PromptPreview(cfg *model.PlayerConfig) string {
	prompt := []rune(cfg.Prompts().Agent0System)
	if len(prompt) > e.previewLen {
		prompt = prompt[:e.previewLen]
	}
	return string(prompt) + ellipsis
}
