package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/pkg/logger"
)

const maxPatchBytes = 64 << 10

// ViewHandler serves the rendered table and settings changes.
type ViewHandler struct {
	svc ViewService
	log logger.Logger
}

// NewViewHandler creates a new view handler.
func NewViewHandler(svc ViewService, log logger.Logger) *ViewHandler {
	return &ViewHandler{svc: svc, log: log}
}

// HandleGetView handles GET /api/view requests.
func (h *ViewHandler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}

// HandlePatchView handles PATCH /api/view requests. The body is a partial
// settings object; absent fields keep their value. The response is the
// table rendered with the new settings.
func (h *ViewHandler) HandlePatchView(w http.ResponseWriter, r *http.Request) {
	var p view.Patch
	dec := json.NewDecoder(io.LimitReader(r.Body, maxPatchBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		h.log.Debug(r.Context(), "rejected view patch", logger.Error(err))
		respondError(w, WrapKind("patch view", ErrBadRequest, err))
		return
	}
	h.svc.Update(r.Context(), p)
	writeJSON(w, http.StatusOK, h.svc.View(r.Context()))
}
