package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/standings/internal/sampledata"
)

const defaultRunTimeout = 5 * time.Minute

func main() {
	var (
		outDir  = flag.String("out", "data", "Output directory")
		players = flag.Int("players", sampledata.DefaultPlayers, "Number of players")
		games   = flag.Int("games", sampledata.DefaultGames, "Games in a full schedule")
		partial = flag.Float64("partial", sampledata.DefaultPartialRatio, "Share of players with a partial schedule")
		missing = flag.Float64("missing", sampledata.DefaultMissingRatio, "Share of players without a config document")
		seed    = flag.Uint64("seed", uint64(time.Now().UnixNano()), "PRNG seed")
		workers = flag.Int("workers", sampledata.DefaultWorkers, "Concurrent config writers")
		baseURL = flag.String("url", "", "Running dashboard to reload and verify")
		timeout = flag.Duration("timeout", sampledata.DefaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Also write logs to this file")
		verbose = flag.Bool("verbose", false, "Log every generated player")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	closer, err := sampledata.SetupLogging(*logFile, *verbose)
	if err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunTimeout)
	defer cancel()

	config := &sampledata.Config{
		OutDir:       *outDir,
		Players:      *players,
		Games:        *games,
		PartialRatio: *partial,
		MissingRatio: *missing,
		Seed:         *seed,
		Workers:      *workers,
		BaseURL:      *baseURL,
		Timeout:      *timeout,
		Verbose:      *verbose,
	}

	if _, err := sampledata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		cancel()
		stop()
		_ = closer.Close()
		os.Exit(1)
	}
}
