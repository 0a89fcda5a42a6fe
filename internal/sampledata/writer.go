package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/export"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// writeDataSet lays out OutDir the way the dashboard loader expects it. It
// returns the number of config documents written.
func writeDataSet(ctx context.Context, cfg *Config, players []Player, records []model.PlayerRecord) (int, error) {
	configDir := filepath.Join(cfg.OutDir, ConfigDir)
	if err := os.MkdirAll(configDir, directoryPermission); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := writeResults(filepath.Join(cfg.OutDir, ResultsFile), records); err != nil {
		return 0, err
	}

	var index []string
	for _, p := range players {
		if p.Config != nil {
			index = append(index, p.Name+ConfigExt)
		}
	}
	if err := writeIndex(filepath.Join(cfg.OutDir, IndexFile), index); err != nil {
		return 0, err
	}

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for _, p := range players {
		if p.Config == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := writeConfig(filepath.Join(configDir, p.Name+ConfigExt), p.Config); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(written.Load()), err
	}
	return int(written.Load()), nil
}

func writeResults(path string, records []model.PlayerRecord) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close results file: %w", cerr)
		}
	}()
	if err := export.WriteCSV(f, records); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func writeIndex(path string, files []string) error {
	if files == nil {
		files = []string{}
	}
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

func writeConfig(path string, cfg *model.PlayerConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
