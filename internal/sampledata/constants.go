package sampledata

import "time"

// File names inside OutDir.
const (
	ResultsFile = "final_standings.csv"
	IndexFile   = "player_configs.json"
	ConfigDir   = "prompt_collection"
	ConfigExt   = ".yml"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Defaults used by the CLI.
const (
	DefaultPlayers      = 40
	DefaultGames        = 12
	DefaultPartialRatio = 0.2
	DefaultMissingRatio = 0.1
	DefaultWorkers      = 4
	DefaultTimeout      = 10 * time.Second
)
