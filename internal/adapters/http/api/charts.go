package api

import (
	"bytes"
	"net/http"

	"github.com/okian/standings/pkg/logger"
)

// ChartHandler serves standalone chart pages for embedding in the dashboard.
type ChartHandler struct {
	svc ChartService
	log logger.Logger
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(svc ChartService, log logger.Logger) *ChartHandler {
	return &ChartHandler{svc: svc, log: log}
}

// HandleChart handles GET /api/charts/{name} requests. The player chart
// reads the player from the name query parameter.
func (h *ChartHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var buf bytes.Buffer
	if err := h.svc.Chart(r.Context(), &buf, name, r.URL.Query().Get("name")); err != nil {
		err = Wrap("chart "+name, err)
		if statusFor(err) >= statusInternalError {
			h.log.Error(r.Context(), "chart render failed", logger.Error(err))
		}
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
