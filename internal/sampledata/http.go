package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/pkg/logger"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Do sends a request without a body and decodes a JSON response into out
// when out is non-nil.
func (c *HTTPClient) Do(ctx context.Context, method, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, body)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, url, err)
	}
	return nil
}

// verifyService asks a running dashboard to reload and checks that it now
// serves the generated standings. The dashboard must read from OutDir.
func verifyService(ctx context.Context, cfg *Config, stats *Stats) error {
	client := newHTTPClient(cfg.Timeout)

	if err := client.Do(ctx, http.MethodGet, cfg.BaseURL+"/healthz", nil); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	if err := client.Do(ctx, http.MethodPost, cfg.BaseURL+"/api/reload", nil); err != nil {
		return fmt.Errorf("service reload failed: %w", err)
	}

	var st model.Stats
	if err := client.Do(ctx, http.MethodGet, cfg.BaseURL+"/api/stats", &st); err != nil {
		return fmt.Errorf("service stats failed: %w", err)
	}
	if st.Players != stats.PlayersGenerated {
		return fmt.Errorf("service reports %d players, generated %d", st.Players, stats.PlayersGenerated)
	}
	if st.TotalGames != stats.GamesPlayed {
		return fmt.Errorf("service reports %d games, generated %d", st.TotalGames, stats.GamesPlayed)
	}

	logger.Get().Info(ctx, "service serves the generated standings",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("players", st.Players))
	return nil
}
