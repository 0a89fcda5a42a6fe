package api

import (
	"net/http"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
	players       PlayerService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider, players PlayerService) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider, players: players}
}

// HandleStatus handles GET /api/status requests.
func (h *StatsHandler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}

// HandleStats handles GET /api/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.players.Stats(r.Context()))
}
