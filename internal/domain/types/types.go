// Package types contains the enumerations shared by the view engine and the API.
//
// Every Parse function is permissive: unknown input maps to the default value
// instead of failing, so a stale client can never break rendering.
package types

import "strings"

// WinRateFilter restricts rows by win-rate band.
type WinRateFilter string

const (
	WinRateAll    WinRateFilter = "all"
	WinRateHigh   WinRateFilter = "high"   // >= 0.6
	WinRateMedium WinRateFilter = "medium" // [0.4, 0.6)
	WinRateLow    WinRateFilter = "low"    // < 0.4
)

// ParseWinRateFilter maps s to a filter, defaulting to WinRateAll.
func ParseWinRateFilter(s string) WinRateFilter {
	switch f := WinRateFilter(normalize(s)); f {
	case WinRateHigh, WinRateMedium, WinRateLow:
		return f
	default:
		return WinRateAll
	}
}

// GamesFilter restricts rows by whether the player finished the schedule.
type GamesFilter string

const (
	GamesAll     GamesFilter = "all"
	GamesFull    GamesFilter = "full"
	GamesPartial GamesFilter = "partial"
)

// ParseGamesFilter maps s to a filter, defaulting to GamesAll.
func ParseGamesFilter(s string) GamesFilter {
	switch f := GamesFilter(normalize(s)); f {
	case GamesFull, GamesPartial:
		return f
	default:
		return GamesAll
	}
}

// SortKey selects the ordering. Each key has a fixed direction.
type SortKey string

const (
	SortRank    SortKey = "rank"    // ascending
	SortRating  SortKey = "rating"  // descending
	SortWinRate SortKey = "winrate" // descending
	SortGames   SortKey = "games"   // descending
)

// ParseSortKey maps s to a key, defaulting to SortRank.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(normalize(s)); k {
	case SortRating, SortWinRate, SortGames:
		return k
	default:
		return SortRank
	}
}

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps s to a theme, defaulting to ThemeLight.
func ParseTheme(s string) Theme {
	if Theme(normalize(s)) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Highlight is the single annotation class a row renders with.
// Precedence, highest first: Pinned, HighWinRate, Top3, None.
type Highlight string

const (
	HighlightNone        Highlight = ""
	HighlightPinned      Highlight = "pinned"
	HighlightHighWinRate Highlight = "high-winrate"
	HighlightTop3        Highlight = "top3"
)

// Tier is the win-rate label shown next to each row.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
