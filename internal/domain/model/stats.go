package model

// Stats summarizes the loaded standings.
type Stats struct {
	Players       int     `json:"players"`
	TotalGames    int     `json:"total_games"`
	MeanWinRate   float64 `json:"mean_win_rate"`
	TopRatingMu   float64 `json:"top_rating_mu"`
	ConfigsLoaded int     `json:"configs_loaded"`
}
