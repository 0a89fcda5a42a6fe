package sampledata

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/okian/standings/pkg/logger"
)

// SetupLogging initializes the global logger, mirroring output to logFile
// when one is given. The returned closer releases the file.
func SetupLogging(logFile string, verbose bool) (io.Closer, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer = io.NopCloser(nil)
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermission)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	if err := logger.Init(logger.WithOutput(out)); err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	if logFile != "" {
		logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	}
	return closer, nil
}

// ShowHelp prints usage information for the generator.
func ShowHelp() {
	os.Stdout.WriteString(`Standings Sample Data Generator
==============================

Writes a synthetic tournament data directory the dashboard can serve:
final_standings.csv, player_configs.json and prompt_collection/*.yml.

Usage:
  go run ./cmd/gen-standings [options]

Options:
  -out string
        Output directory (default "data")
  -players int
        Number of players (default 40)
  -games int
        Games in a full schedule (default 12)
  -partial float
        Share of players with a partial schedule (default 0.2)
  -missing float
        Share of players without a config document (default 0.1)
  -seed uint
        PRNG seed; equal seeds give equal data (default: current time)
  -workers int
        Concurrent config writers (default 4)
  -url string
        Running dashboard to reload and verify (optional)
  -timeout duration
        HTTP request timeout (default 10s)
  -log string
        Also write logs to this file
  -verbose
        Log every generated player
  -help
        Show this help message

Examples:
  # Generate the default data set
  go run ./cmd/gen-standings -out data

  # Regenerate with a fixed seed and check a running dashboard
  go run ./cmd/gen-standings -out data -seed 7 -url http://localhost:8000
`)
}
