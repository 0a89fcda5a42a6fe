package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float encodes NaN and infinities as JSON null.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// RecordJSON is the wire form of a PlayerRecord. Embed it to flatten the
// record into a larger document.
type RecordJSON struct {
	Rank        int    `json:"rank"`
	Player      string `json:"player"`
	RatingMu    Float  `json:"rating_mu"`
	RatingSigma Float  `json:"rating_sigma"`
	Wins        int    `json:"wins"`
	Draws       int    `json:"draws"`
	Losses      int    `json:"losses"`
	Games       int    `json:"games"`
	WinRate     Float  `json:"win_rate"`
	Malformed   bool   `json:"malformed,omitempty"`
}

// JSON returns the wire form of r.
func (r PlayerRecord) JSON() RecordJSON {
	return RecordJSON{
		Rank:        r.Rank,
		Player:      r.Player,
		RatingMu:    Float(r.RatingMu),
		RatingSigma: Float(r.RatingSigma),
		Wins:        r.Wins,
		Draws:       r.Draws,
		Losses:      r.Losses,
		Games:       r.Games,
		WinRate:     Float(r.WinRate),
		Malformed:   r.Malformed,
	}
}

// MarshalJSON implements json.Marshaler.
func (r PlayerRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.JSON())
}
