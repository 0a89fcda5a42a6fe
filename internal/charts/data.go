package charts

import (
	"cmp"
	"math"
	"slices"

	"github.com/okian/standings/internal/domain/model"
)

// DataPoint represents a single data point in a chart.
type DataPoint struct {
	Label string
	Value float64
}

// Outcomes is the wins/draws/losses split for one player or many.
type Outcomes struct {
	Labels []string
	Wins   []int
	Draws  []int
	Losses []int
}

// Bin is one rating range. Max is exclusive.
type Bin struct {
	Label string
	Min   float64
	Max   float64
	Count int
}

// RatingBins are the ranges of the rating distribution chart.
func RatingBins() []Bin {
	return []Bin{
		{Label: "0-15", Min: 0, Max: 15},
		{Label: "15-20", Min: 15, Max: 20},
		{Label: "20-25", Min: 20, Max: 25},
		{Label: "25-30", Min: 25, Max: 30},
		{Label: "30-35", Min: 30, Max: 35},
		{Label: "35-40", Min: 35, Max: 40},
		{Label: "40+", Min: 40, Max: math.Inf(1)},
	}
}

// TopWinRates returns the n best win rates as percentages, highest first.
// Records without a valid win rate are left out.
func TopWinRates(records []model.PlayerRecord, n int) []DataPoint {
	valid := slices.DeleteFunc(slices.Clone(records), func(r model.PlayerRecord) bool {
		return math.IsNaN(r.WinRate)
	})
	slices.SortStableFunc(valid, func(a, b model.PlayerRecord) int {
		return cmp.Compare(b.WinRate, a.WinRate)
	})
	valid = valid[:min(n, len(valid))]

	out := make([]DataPoint, len(valid))
	for i, r := range valid {
		out[i] = DataPoint{Label: r.Player, Value: r.WinRate * 100}
	}
	return out
}

// RatingDistribution counts players per rating bin. Ratings below zero or
// NaN land in no bin.
func RatingDistribution(records []model.PlayerRecord) []Bin {
	bins := RatingBins()
	for _, r := range records {
		for i := range bins {
			if r.RatingMu >= bins[i].Min && r.RatingMu < bins[i].Max {
				bins[i].Count++
				break
			}
		}
	}
	return bins
}

// GameOutcomes returns the outcome split of the first n records in load order.
func GameOutcomes(records []model.PlayerRecord, n int) Outcomes {
	head := records[:min(n, len(records))]
	out := Outcomes{
		Labels: make([]string, len(head)),
		Wins:   make([]int, len(head)),
		Draws:  make([]int, len(head)),
		Losses: make([]int, len(head)),
	}
	for i, r := range head {
		out.Labels[i] = r.Player
		out.Wins[i] = r.Wins
		out.Draws[i] = r.Draws
		out.Losses[i] = r.Losses
	}
	return out
}

// PlayerOutcome is the doughnut data for one player.
func PlayerOutcome(r model.PlayerRecord) []DataPoint {
	return []DataPoint{
		{Label: "Wins", Value: float64(r.Wins)},
		{Label: "Draws", Value: float64(r.Draws)},
		{Label: "Losses", Value: float64(r.Losses)},
	}
}
