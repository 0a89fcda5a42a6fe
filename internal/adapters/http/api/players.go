package api

import (
	"net/http"
)

// PlayerHandler serves player detail and comparison reads.
type PlayerHandler struct {
	svc PlayerService
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(svc PlayerService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// HandleGetPlayer handles GET /api/players/{player} requests.
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Player(r.Context(), r.PathValue("player"))
	if err != nil {
		respondError(w, Wrap("get player", err))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// HandleCompare handles GET /api/compare requests.
func (h *PlayerHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Compare(r.Context())
	if err != nil {
		respondError(w, Wrap("compare", err))
		return
	}
	writeJSON(w, http.StatusOK, c)
}
