package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/standings/internal/domain/model"
)

// DecodeIndex parses the config index, a JSON array of file names.
func DecodeIndex(r io.Reader) ([]string, error) {
	var files []string
	if err := json.NewDecoder(r).Decode(&files); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndex, err)
	}
	return files, nil
}

// MatchConfigFile returns the file for player: the name must start with the
// exact player name and end with ext. When several match, the
// lexicographically smallest wins.
func MatchConfigFile(files []string, player, ext string) (string, bool) {
	if player == "" {
		return "", false
	}
	var best string
	var found bool
	for _, f := range files {
		if !strings.HasPrefix(f, player) || !strings.HasSuffix(f, ext) {
			continue
		}
		if !found || f < best {
			best, found = f, true
		}
	}
	return best, found
}

// DecodeConfig parses one player's YAML document. Unknown keys are ignored
// and missing sections stay nil.
func DecodeConfig(r io.Reader) (*model.PlayerConfig, error) {
	var cfg model.PlayerConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigDecode, err)
	}
	return &cfg, nil
}
