package api

import (
	"net/http"

	"github.com/okian/standings/pkg/logger"
)

// ReloadHandler rereads the standings on demand.
type ReloadHandler struct {
	svc interface {
		ReloadService
		ViewService
	}
	log logger.Logger
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies, log logger.Logger) *ReloadHandler {
	return &ReloadHandler{svc: deps, log: log}
}

// HandleReload handles POST /api/reload requests. A failed reload keeps the
// previous standings and answers 500 with the cause.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reload(r.Context()); err != nil {
		h.log.Warn(r.Context(), "manual reload failed", logger.Error(err))
		respondError(w, WrapKind("reload", ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}
