package source

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/pkg/logger"
	"github.com/okian/standings/pkg/metrics"
)

const (
	defaultResultsFile = "final_standings.csv"
	defaultIndexFile   = "player_configs.json"
	defaultConfigDir   = "prompt_collection"
	defaultConfigExt   = ".yml"
	defaultConcurrency = 8
)

// ConfigSink receives decoded player configs.
type ConfigSink interface {
	AttachConfig(ctx context.Context, player string, cfg *model.PlayerConfig) error
}

// Failure is one player whose config could not be loaded.
type Failure struct {
	Player string
	File   string
	Err    error
}

// Report summarizes a config load pass.
type Report struct {
	Loaded   int
	Missing  int
	Failed   int
	Failures []Failure
	IndexErr error
}

// Loader reads standings and configs from a file system rooted at the data
// directory.
type Loader struct {
	fsys        fs.FS
	resultsFile string
	indexFile   string
	configDir   string
	configExt   string
	concurrency int
	log         logger.Logger
}

// NewLoader creates a Loader over fsys.
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:        fsys,
		resultsFile: defaultResultsFile,
		indexFile:   defaultIndexFile,
		configDir:   defaultConfigDir,
		configExt:   defaultConfigExt,
		concurrency: defaultConcurrency,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ResultsFile returns the standings file name, relative to the data root.
func (l *Loader) ResultsFile() string { return l.resultsFile }

// Results reads and decodes the standings file.
func (l *Loader) Results(ctx context.Context) ([]model.PlayerRecord, error) {
	f, err := l.fsys.Open(l.resultsFile)
	if err != nil {
		metrics.RecordResultsLoad(metrics.ResultError)
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, l.resultsFile, err)
	}
	defer func() { _ = f.Close() }()

	records, err := DecodeResults(f)
	if err != nil {
		metrics.RecordResultsLoad(metrics.ResultError)
		return nil, err
	}
	metrics.RecordResultsLoad(metrics.ResultOK)
	l.log.Info(ctx, "standings loaded",
		logger.String("file", l.resultsFile),
		logger.Int("players", len(records)))
	return records, nil
}

// Index reads the config index.
func (l *Loader) Index(_ context.Context) ([]string, error) {
	f, err := l.fsys.Open(l.indexFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIndex, l.indexFile, err)
	}
	defer func() { _ = f.Close() }()
	return DecodeIndex(f)
}

// Configs loads the config of every player into sink, at most concurrency
// at a time. A failure for one player is logged and reported but never
// stops the others. A missing or broken index leaves every player without
// config and is reported in Report.IndexErr.
func (l *Loader) Configs(ctx context.Context, players []string, sink ConfigSink) (Report, error) {
	var rep Report

	files, err := l.Index(ctx)
	if err != nil {
		l.log.Warn(ctx, "config index unavailable", logger.String("file", l.indexFile), logger.Error(err))
		metrics.RecordError("source", "index")
		rep.IndexErr = err
		rep.Missing = len(players)
		return rep, nil
	}

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(l.concurrency)

	for _, player := range players {
		name, ok := MatchConfigFile(files, player, l.configExt)
		if !ok {
			l.log.Debug(ctx, "no config file", logger.String("player", player))
			metrics.RecordConfigLoad(metrics.ResultMissing)
			rep.Missing++
			continue
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			cfg, err := l.readConfig(name)
			metrics.RecordConfigLoadLatency(float64(time.Since(start).Microseconds()) / 1000)
			if err == nil {
				err = sink.AttachConfig(egCtx, player, cfg)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.log.Warn(egCtx, "player config failed",
					logger.String("player", player),
					logger.String("file", name),
					logger.Error(err))
				metrics.RecordConfigLoad(metrics.ResultFailed)
				rep.Failed++
				rep.Failures = append(rep.Failures, Failure{Player: player, File: name, Err: err})
				return nil
			}
			metrics.RecordConfigLoad(metrics.ResultLoaded)
			rep.Loaded++
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return rep, fmt.Errorf("load configs: %w", err)
	}
	l.log.Info(ctx, "player configs loaded",
		logger.Int("loaded", rep.Loaded),
		logger.Int("missing", rep.Missing),
		logger.Int("failed", rep.Failed))
	return rep, nil
}

func (l *Loader) readConfig(name string) (*model.PlayerConfig, error) {
	f, err := l.fsys.Open(path.Join(l.configDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}
	defer func() { _ = f.Close() }()
	return DecodeConfig(f)
}
