// Package export projects player records into downloadable CSV and JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/standings/internal/adapters/source"
	"github.com/okian/standings/internal/domain/model"
)

// Format represents the export format.
type Format string

const (
	// FormatCSV represents CSV export format.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON export format.
	FormatJSON Format = "json"
)

// Suggested download names.
const (
	CSVFileName  = "tournament_results.csv"
	JSONFileName = "tournament_results.json"
)

// ModelLookup resolves the model info embedded in JSON exports.
type ModelLookup func(player string) model.ModelInfo

// Entry is one JSON export row.
type Entry struct {
	model.RecordJSON
	Model model.ModelInfo `json:"model"`
}

// Rows returns one flat tuple per record in PlayerRecord field order.
// Floats use the shortest representation that parses back to the same value.
func Rows(records []model.PlayerRecord) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = []string{
			strconv.Itoa(r.Rank),
			r.Player,
			formatFloat(r.RatingMu),
			formatFloat(r.RatingSigma),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Games),
			formatFloat(r.WinRate),
		}
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteCSV writes the header and one line per record. Model info is not part
// of the CSV form.
func WriteCSV(w io.Writer, records []model.PlayerRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(source.ResultsHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(Rows(records)); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

// Entries builds the JSON export rows. A nil lookup yields N/A models.
func Entries(records []model.PlayerRecord, lookup ModelLookup) []Entry {
	out := make([]Entry, len(records))
	for i, r := range records {
		info := model.ModelInfo{Agent0: model.NotAvailable, Agent1: model.NotAvailable}
		if lookup != nil {
			info = lookup(r.Player)
		}
		out[i] = Entry{RecordJSON: r.JSON(), Model: info}
	}
	return out
}

// WriteJSON writes the records as an indented JSON array with the model info
// nested under each row.
func WriteJSON(w io.Writer, records []model.PlayerRecord, lookup ModelLookup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Entries(records, lookup)); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

// Write dispatches on format.
func Write(w io.Writer, format Format, records []model.PlayerRecord, lookup ModelLookup) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		return WriteJSON(w, records, lookup)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// FileName returns the suggested download name for format.
func FileName(format Format) string {
	if format == FormatJSON {
		return JSONFileName
	}
	return CSVFileName
}
