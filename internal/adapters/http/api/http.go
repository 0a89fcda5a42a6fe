// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/types"
	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/internal/export"
	"github.com/okian/standings/pkg/logger"
)

// ViewService renders the table and applies settings changes.
type ViewService interface {
	View(ctx context.Context) view.Response
	Update(ctx context.Context, p view.Patch) view.Settings
}

// SelectionService mutates the pin and the comparison set.
type SelectionService interface {
	TogglePin(ctx context.Context, name string) view.Settings
	ToggleSelection(ctx context.Context, name string) view.Settings
	SelectAll(ctx context.Context) view.Settings
	ClearSelection(ctx context.Context) view.Settings
}

// PlayerService exposes per-player reads.
type PlayerService interface {
	Player(ctx context.Context, name string) (view.PlayerDetail, error)
	Compare(ctx context.Context) (view.Comparison, error)
	Stats(ctx context.Context) model.Stats
}

// ExportService writes the filtered standings in a download format.
type ExportService interface {
	Export(ctx context.Context, w io.Writer, format export.Format) error
}

// ThemeService reads and flips the dashboard theme.
type ThemeService interface {
	Theme(ctx context.Context) types.Theme
	ToggleTheme(ctx context.Context) types.Theme
}

// ChartService renders chart pages.
type ChartService interface {
	Chart(ctx context.Context, w io.Writer, name, player string) error
}

// ReloadService rereads the standings from disk.
type ReloadService interface {
	Reload(ctx context.Context) error
}

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ViewService
	SelectionService
	PlayerService
	ExportService
	ThemeService
	ChartService
	ReloadService
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	viewHandler      *ViewHandler
	selectionHandler *SelectionHandler
	playerHandler    *PlayerHandler
	exportHandler    *ExportHandler
	themeHandler     *ThemeHandler
	chartHandler     *ChartHandler
	reloadHandler    *ReloadHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider, deps),
		viewHandler:      NewViewHandler(deps, o.log),
		selectionHandler: NewSelectionHandler(deps),
		playerHandler:    NewPlayerHandler(deps),
		exportHandler:    NewExportHandler(deps, o.log),
		themeHandler:     NewThemeHandler(deps),
		chartHandler:     NewChartHandler(deps, o.log),
		reloadHandler:    NewReloadHandler(deps, o.log),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /api/status", MetricsMiddleware(s.statsHandler.HandleStatus, "status"))
	mux.HandleFunc("GET /api/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /api/view", MetricsMiddleware(s.viewHandler.HandleGetView, "view"))
	mux.HandleFunc("PATCH /api/view", MetricsMiddleware(s.viewHandler.HandlePatchView, "view"))

	mux.HandleFunc("POST /api/pin/{player}", MetricsMiddleware(s.selectionHandler.HandlePin, "pin"))
	mux.HandleFunc("POST /api/select/{player}", MetricsMiddleware(s.selectionHandler.HandleSelect, "select"))
	mux.HandleFunc("POST /api/select-all", MetricsMiddleware(s.selectionHandler.HandleSelectAll, "select"))
	mux.HandleFunc("DELETE /api/select", MetricsMiddleware(s.selectionHandler.HandleClear, "select"))

	mux.HandleFunc("GET /api/players/{player}", MetricsMiddleware(s.playerHandler.HandleGetPlayer, "players"))
	mux.HandleFunc("GET /api/compare", MetricsMiddleware(s.playerHandler.HandleCompare, "compare"))

	mux.HandleFunc("GET /api/export.csv", MetricsMiddleware(s.exportHandler.Handle(export.FormatCSV), "export"))
	mux.HandleFunc("GET /api/export.json", MetricsMiddleware(s.exportHandler.Handle(export.FormatJSON), "export"))

	mux.HandleFunc("GET /api/theme", MetricsMiddleware(s.themeHandler.HandleGetTheme, "theme"))
	mux.HandleFunc("POST /api/theme/toggle", MetricsMiddleware(s.themeHandler.HandleToggle, "theme"))

	mux.HandleFunc("GET /api/charts/{name}", MetricsMiddleware(s.chartHandler.HandleChart, "charts"))
	mux.HandleFunc("POST /api/reload", MetricsMiddleware(s.reloadHandler.HandleReload, "reload"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// respondError classifies err and writes the matching status and code.
func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	writeError(w, status, codeFor(status), err)
}
