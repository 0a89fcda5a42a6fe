package api

import (
	"net/http"

	"github.com/okian/standings/internal/domain/view"
)

// SelectionHandler toggles pin and comparison membership. Every mutation
// answers with the re-rendered table.
type SelectionHandler struct {
	svc interface {
		SelectionService
		ViewService
	}
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(deps Dependencies) *SelectionHandler {
	return &SelectionHandler{svc: deps}
}

// HandlePin handles POST /api/pin/{player} requests.
func (h *SelectionHandler) HandlePin(w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("player")
	if player == "" {
		respondError(w, Wrap("pin", view.ErrMissingPlayer))
		return
	}
	h.svc.TogglePin(r.Context(), player)
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}

// HandleSelect handles POST /api/select/{player} requests.
func (h *SelectionHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("player")
	if player == "" {
		respondError(w, Wrap("select", view.ErrMissingPlayer))
		return
	}
	h.svc.ToggleSelection(r.Context(), player)
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}

// HandleSelectAll handles POST /api/select-all requests.
func (h *SelectionHandler) HandleSelectAll(w http.ResponseWriter, r *http.Request) {
	h.svc.SelectAll(r.Context())
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}

// HandleClear handles DELETE /api/select requests.
func (h *SelectionHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearSelection(r.Context())
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}
