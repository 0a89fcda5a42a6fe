// Package source reads the tournament standings, the config index and the
// per-player YAML documents.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okian/standings/internal/domain/model"
)

// ResultsHeader is the column order of the standings file.
var ResultsHeader = []string{
	"Rank", "Player", "Rating_Mu", "Rating_Sigma",
	"Wins", "Draws", "Losses", "Games", "Win_Rate",
}

// DecodeResults parses the standings CSV. The first row is a header and is
// skipped without inspection. A row with the wrong number of fields fails
// the whole decode; an unparsable number becomes NaN (floats) or 0 (ints)
// and marks the record Malformed.
func DecodeResults(r io.Reader) ([]model.PlayerRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []model.PlayerRecord
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrDecode, line, err)
		}
		if line == 1 {
			continue
		}
		if len(row) != len(ResultsHeader) {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d",
				ErrDecode, line, len(ResultsHeader), len(row))
		}
		out = append(out, decodeRow(row))
	}
	return out, nil
}

func decodeRow(row []string) model.PlayerRecord {
	var bad bool
	f := func(s string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			bad = true
			return math.NaN()
		}
		return v
	}
	i := func(s string) int {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			bad = true
			return 0
		}
		return v
	}

	rec := model.PlayerRecord{
		Rank:        i(row[0]),
		Player:      row[1],
		RatingMu:    f(row[2]),
		RatingSigma: f(row[3]),
		Wins:        i(row[4]),
		Draws:       i(row[5]),
		Losses:      i(row[6]),
		Games:       i(row[7]),
		WinRate:     f(row[8]),
	}
	rec.Malformed = bad
	return rec
}
