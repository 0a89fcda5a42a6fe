// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and environment on top.
// - External errors are wrapped with this package's sentinels.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is the root every data path below is resolved against.
	DataDir string `koanf:"data_dir"`

	// ResultsFile is the tournament standings CSV, relative to DataDir.
	ResultsFile string `koanf:"results_file"`

	// ConfigIndexFile is a JSON array of player config filenames, relative to DataDir.
	ConfigIndexFile string `koanf:"config_index_file"`

	// ConfigDir holds the per-player YAML documents, relative to DataDir.
	ConfigDir string `koanf:"config_dir"`

	// ConfigExt is the suffix a config filename must carry to match a player.
	ConfigExt string `koanf:"config_ext"`

	// LoadConcurrency bounds parallel player config fetches.
	LoadConcurrency int `koanf:"load_concurrency"`

	// ThemePath is where the theme preference is persisted.
	ThemePath string `koanf:"theme_path"`

	// WatchResults reloads the standings when ResultsFile changes on disk.
	WatchResults bool `koanf:"watch_results"`

	// WatchDebounceMS coalesces bursts of file events.
	WatchDebounceMS int `koanf:"watch_debounce_ms"`

	// FullGames is the game count that marks a player as having a full schedule.
	FullGames int `koanf:"full_games"`

	// PromptPreviewLen is the number of characters kept in the prompt column.
	PromptPreviewLen int `koanf:"prompt_preview_len"`

	// CORSOrigins enables cross-origin access to the API when non-empty.
	CORSOrigins []string `koanf:"cors_origins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":8000",
		DataDir:          "data",
		ResultsFile:      "final_standings.csv",
		ConfigIndexFile:  "player_configs.json",
		ConfigDir:        "prompt_collection",
		ConfigExt:        ".yml",
		LoadConcurrency:  8,
		ThemePath:        ".standings-theme.yaml",
		WatchResults:     false,
		WatchDebounceMS:  250,
		FullGames:        12,
		PromptPreviewLen: 150,
	}
}
