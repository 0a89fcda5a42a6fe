package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/okian/standings/internal/export"
	"github.com/okian/standings/pkg/logger"
)

// ExportHandler serves the filtered standings as file downloads.
type ExportHandler struct {
	svc ExportService
	log logger.Logger
}

// NewExportHandler creates a new export handler.
func NewExportHandler(svc ExportService, log logger.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: log}
}

// Handle returns the handler for GET /api/export.{format}.
func (h *ExportHandler) Handle(format export.Format) http.HandlerFunc {
	contentType := "text/csv; charset=utf-8"
	if format == export.FormatJSON {
		contentType = "application/json; charset=utf-8"
	}
	disposition := fmt.Sprintf("attachment; filename=%q", export.FileName(format))

	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := h.svc.Export(r.Context(), &buf, format); err != nil {
			h.log.Error(r.Context(), "export failed",
				logger.String("format", string(format)), logger.Error(err))
			respondError(w, Wrap("export", err))
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", disposition)
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
