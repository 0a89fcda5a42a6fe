package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/okian/standings/internal/domain/types"
)

// ThemeStore persists the theme preference between runs.
type ThemeStore interface {
	Load(ctx context.Context) (types.Theme, error)
	Save(ctx context.Context, theme types.Theme) error
}

// FileThemeStore keeps the theme in a one-key YAML file.
type FileThemeStore struct {
	path string
}

// NewFileThemeStore creates a store writing to path.
func NewFileThemeStore(path string) *FileThemeStore {
	return &FileThemeStore{path: path}
}

type themeDoc struct {
	Theme string `yaml:"theme"`
}

// Load returns the stored theme. A missing file yields light.
func (s *FileThemeStore) Load(_ context.Context) (types.Theme, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.ThemeLight, nil
	}
	if err != nil {
		return types.ThemeLight, fmt.Errorf("read theme: %w", err)
	}
	var doc themeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.ThemeLight, fmt.Errorf("decode theme: %w", err)
	}
	return types.ParseTheme(doc.Theme), nil
}

// Save writes the theme, replacing the file atomically.
func (s *FileThemeStore) Save(_ context.Context, theme types.Theme) error {
	data, err := yaml.Marshal(themeDoc{Theme: string(theme)})
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create theme dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace theme: %w", err)
	}
	return nil
}

// memoryThemeStore is used when no path is configured.
type memoryThemeStore struct {
	theme types.Theme
}

func (m *memoryThemeStore) Load(context.Context) (types.Theme, error) {
	if m.theme == "" {
		return types.ThemeLight, nil
	}
	return m.theme, nil
}

func (m *memoryThemeStore) Save(_ context.Context, theme types.Theme) error {
	m.theme = theme
	return nil
}
