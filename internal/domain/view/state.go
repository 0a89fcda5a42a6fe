// Package view holds the dashboard's mutable view state and the pure engine
// that derives the rendered table from records plus that state.
package view

import (
	"github.com/okian/standings/internal/domain/selection"
	"github.com/okian/standings/internal/domain/types"
)

// State is the full set of user-controlled view settings.
type State struct {
	SearchTerm       string
	WinRate          types.WinRateFilter
	Games            types.GamesFilter
	Sort             types.SortKey
	HighlightTop3    bool
	HighlightWinRate bool
	ShowModel        bool
	ShowPrompts      bool
	Pin              selection.Pin
	Selection        *selection.Set
	Theme            types.Theme
}

// NewState returns the state a fresh dashboard starts with.
func NewState() State {
	return State{
		WinRate:       types.WinRateAll,
		Games:         types.GamesAll,
		Sort:          types.SortRank,
		HighlightTop3: true,
		Selection:     selection.New(),
		Theme:         types.ThemeLight,
	}
}

// Clone returns a deep copy safe to read while the original keeps changing.
func (s State) Clone() State {
	c := s
	if s.Selection != nil {
		c.Selection = s.Selection.Clone()
	} else {
		c.Selection = selection.New()
	}
	return c
}

// Settings is the wire shape of State.
type Settings struct {
	SearchTerm       string              `json:"search"`
	WinRate          types.WinRateFilter `json:"win_rate_filter"`
	Games            types.GamesFilter   `json:"games_filter"`
	Sort             types.SortKey       `json:"sort"`
	HighlightTop3    bool                `json:"highlight_top3"`
	HighlightWinRate bool                `json:"highlight_win_rate"`
	ShowModel        bool                `json:"show_model"`
	ShowPrompts      bool                `json:"show_prompts"`
	Pinned           string              `json:"pinned,omitempty"`
	Selected         []string            `json:"selected"`
	CanCompare       bool                `json:"can_compare"`
	Theme            types.Theme         `json:"theme"`
}

// Settings snapshots s for the API.
func (s State) Settings() Settings {
	out := Settings{
		SearchTerm:       s.SearchTerm,
		WinRate:          s.WinRate,
		Games:            s.Games,
		Sort:             s.Sort,
		HighlightTop3:    s.HighlightTop3,
		HighlightWinRate: s.HighlightWinRate,
		ShowModel:        s.ShowModel,
		ShowPrompts:      s.ShowPrompts,
		Pinned:           s.Pin.Name(),
		Selected:         []string{},
		Theme:            s.Theme,
	}
	if s.Selection != nil {
		out.Selected = s.Selection.Names()
		out.CanCompare = s.Selection.CanCompare()
	}
	return out
}

// Patch is a partial update of the settings a user edits directly. Nil
// fields are left alone. Enum fields go through the permissive parsers.
type Patch struct {
	SearchTerm       *string `json:"search,omitempty"`
	WinRate          *string `json:"win_rate_filter,omitempty"`
	Games            *string `json:"games_filter,omitempty"`
	Sort             *string `json:"sort,omitempty"`
	HighlightTop3    *bool   `json:"highlight_top3,omitempty"`
	HighlightWinRate *bool   `json:"highlight_win_rate,omitempty"`
	ShowModel        *bool   `json:"show_model,omitempty"`
	ShowPrompts      *bool   `json:"show_prompts,omitempty"`
}

// Apply mutates s with every non-nil field of p and returns the names of the
// fields that were present, in a fixed order.
func (s *State) Apply(p Patch) []string {
	var changed []string
	if p.SearchTerm != nil {
		s.SearchTerm = *p.SearchTerm
		changed = append(changed, "search")
	}
	if p.WinRate != nil {
		s.WinRate = types.ParseWinRateFilter(*p.WinRate)
		changed = append(changed, "win_rate_filter")
	}
	if p.Games != nil {
		s.Games = types.ParseGamesFilter(*p.Games)
		changed = append(changed, "games_filter")
	}
	if p.Sort != nil {
		s.Sort = types.ParseSortKey(*p.Sort)
		changed = append(changed, "sort")
	}
	if p.HighlightTop3 != nil {
		s.HighlightTop3 = *p.HighlightTop3
		changed = append(changed, "highlight_top3")
	}
	if p.HighlightWinRate != nil {
		s.HighlightWinRate = *p.HighlightWinRate
		changed = append(changed, "highlight_win_rate")
	}
	if p.ShowModel != nil {
		s.ShowModel = *p.ShowModel
		changed = append(changed, "show_model")
	}
	if p.ShowPrompts != nil {
		s.ShowPrompts = *p.ShowPrompts
		changed = append(changed, "show_prompts")
	}
	return changed
}
