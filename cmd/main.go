package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/okian/standings/internal/adapters/http/api"
	"github.com/okian/standings/internal/adapters/http/site"
	"github.com/okian/standings/internal/adapters/http/swagger"
	"github.com/okian/standings/internal/adapters/repository"
	"github.com/okian/standings/internal/adapters/source"
	"github.com/okian/standings/internal/adapters/watch"
	app "github.com/okian/standings/internal/app"
	"github.com/okian/standings/internal/config"
	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/pkg/logger"
	"github.com/okian/standings/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
	corsMaxAge            = 300
)

func main() {
	// Initialize logging with defaults; Init runs again once the format is known.
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newService(cfg, log)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Stop()

	if cfg.WatchResults {
		w, err := newWatcher(cfg, svc, log)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer func() {
			if err := w.Stop(); err != nil {
				log.Warn(ctx, "watcher stop failed", logger.Error(err))
			}
		}()
	}

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newService wires the data directory, view engine and theme file into a
// dashboard service. The service is not started.
func newService(cfg *config.Config, log logger.Logger) *app.Service {
	loader := source.NewLoader(os.DirFS(cfg.DataDir),
		source.WithResultsFile(cfg.ResultsFile),
		source.WithIndexFile(cfg.ConfigIndexFile),
		source.WithConfigDir(cfg.ConfigDir),
		source.WithConfigExt(cfg.ConfigExt),
		source.WithConcurrency(cfg.LoadConcurrency),
		source.WithLogger(log.Named("source")),
	)
	return app.New(
		app.WithLogger(log),
		app.WithSource(loader),
		app.WithStore(repository.NewMemoryStore(repository.WithLogger(log.Named("store")))),
		app.WithThemeStore(app.NewFileThemeStore(cfg.ThemePath)),
		app.WithEngine(view.NewEngine(
			view.WithFullGames(cfg.FullGames),
			view.WithPreviewLen(cfg.PromptPreviewLen),
		)),
	)
}

// newWatcher reloads svc whenever the standings file changes.
func newWatcher(cfg *config.Config, svc *app.Service, log logger.Logger) (*watch.Watcher, error) {
	return watch.New(
		filepath.Join(cfg.DataDir, cfg.ResultsFile),
		svc.Reload,
		watch.WithDebounce(time.Duration(cfg.WatchDebounceMS)*time.Millisecond),
		watch.WithLogger(log.Named("watch")),
	)
}

// newHandler registers every route and wraps the mux in the request id,
// access log and optional CORS middleware.
func newHandler(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	// Register API docs under /api-docs
	swagger.Register(ctx, mux)

	// Register dashboard API routes with the service dependency.
	apiServer := api.NewServer(svc, svc, api.WithLogger(log.Named("api")))
	apiServer.Register(ctx, mux)

	// The dashboard front end catches everything else.
	site.Register(ctx, mux)

	var h http.Handler = mux
	if len(cfg.CORSOrigins) > 0 {
		h = cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", api.HeaderRequestID},
			ExposedHeaders: []string{"Content-Disposition", api.HeaderRequestID},
			MaxAge:         corsMaxAge,
		})(h)
	}
	return api.RequestID(api.AccessLog(log.Named("http"))(h))
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
