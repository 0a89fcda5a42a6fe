package api

import (
	"net/http"

	"github.com/okian/standings/internal/domain/types"
)

type themeResponse struct {
	Theme types.Theme `json:"theme"`
}

// ThemeHandler serves the theme preference.
type ThemeHandler struct {
	svc ThemeService
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(svc ThemeService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

// HandleGetTheme handles GET /api/theme requests.
func (h *ThemeHandler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Theme: h.svc.Theme(r.Context())})
}

// HandleToggle handles POST /api/theme/toggle requests.
func (h *ThemeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Theme: h.svc.ToggleTheme(r.Context())})
}
