package sampledata

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/okian/standings/internal/domain/model"
)

// Strength bands, drawn with equal probability. Elite and very low players
// are rare because their bands are narrow.
var strengthBands = [][2]float64{
	{3.0, 7.0},  // average
	{7.0, 9.0},  // high
	{0.1, 3.0},  // low
	{9.0, 10.0}, // elite
	{0.1, 1.0},  // very low
	{6.0, 8.0},  // mid-high
	{2.0, 4.0},  // mid-low
	{0.1, 10.0}, // anything
}

// Rating model constants.
const (
	baseMu        = 25.0
	baseSigma     = 25.0 / 3
	muPerNetWin   = 1.5
	drawChance    = 0.12
	strengthScale = 2.5
	minPartial    = 3
)

var (
	adjectives = []string{"swift", "quiet", "bold", "clever", "lucky", "steady", "brisk", "sly", "keen", "calm"}
	nouns      = []string{"falcon", "otter", "lynx", "heron", "badger", "viper", "raven", "marten", "ibis", "orca"}
	models     = []model.ModelDescriptor{
		{Provider: "anthropic", Name: "claude-sonnet"},
		{Provider: "anthropic", Name: "claude-haiku"},
		{Provider: "openai", Name: "gpt-4o"},
		{Provider: "openai", Name: "gpt-4o-mini"},
		{Provider: "google", Name: "gemini-pro"},
		{Provider: "meta", Name: "llama-70b"},
	}
	systemPrompts = []string{
		"You are the striker. Take every clear shot and call for the ball early.",
		"You are the anchor. Hold position, intercept passes and never overcommit.",
		"You read the field before moving. Prefer safe passes over risky dribbles.",
		"You press high and force mistakes. Recover quickly when the ball is lost.",
	}
	stepPrompts = []string{
		"Describe the state, list two options, pick one and explain it in a sentence.",
		"Check your teammate's last move first, then act to support it.",
		"If the opponent is within two cells, defend; otherwise advance.",
	}
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

// generatePlayers creates n players with unique names, a strength drawn
// from the bands above and, unless skipped, a two-agent config.
func generatePlayers(rng *rand.Rand, cfg *Config) []Player {
	// Equal-width suffixes keep any name from prefixing another one.
	width := len(strconv.Itoa(cfg.Players))
	players := make([]Player, cfg.Players)
	for i := range players {
		band := pick(rng, strengthBands)
		p := Player{
			Name:     fmt.Sprintf("%s_%s_%0*d", pick(rng, adjectives), pick(rng, nouns), width, i+1),
			Strength: uniform(rng, band[0], band[1]),
		}
		if rng.Float64() >= cfg.MissingRatio {
			p.Config = generateConfig(rng)
		}
		players[i] = p
	}
	return players
}

func generateConfig(rng *rand.Rand) *model.PlayerConfig {
	slot := func() *model.AgentSlot {
		m := pick(rng, models)
		return &model.AgentSlot{
			Model: &m,
			Prompts: &model.PromptPair{
				SystemPrompt: pick(rng, systemPrompts),
				StepPrompt:   pick(rng, stepPrompts),
			},
		}
	}
	return &model.PlayerConfig{Agent0: slot(), Agent1: slot()}
}

// playTournament plays every player's schedule against random opponents and
// returns the standings ordered by rating, ranks assigned from 1. It also
// returns the number of games simulated.
func playTournament(rng *rand.Rand, players []Player, cfg *Config) ([]model.PlayerRecord, int) {
	records := make([]model.PlayerRecord, len(players))
	played := 0
	for i, p := range players {
		games := cfg.Games
		if cfg.Games > minPartial && rng.Float64() < cfg.PartialRatio {
			games = minPartial + rng.IntN(cfg.Games-minPartial)
		}

		rec := model.PlayerRecord{Player: p.Name, Games: games}
		for range games {
			opp := players[rng.IntN(len(players))]
			switch r := rng.Float64(); {
			case r < drawChance:
				rec.Draws++
			case r < drawChance+(1-drawChance)*winChance(p.Strength, opp.Strength):
				rec.Wins++
			default:
				rec.Losses++
			}
		}
		played += games
		records[i] = rate(rec)
	}

	slices.SortStableFunc(records, func(a, b model.PlayerRecord) int {
		return cmp.Compare(b.RatingMu, a.RatingMu)
	})
	for i := range records {
		records[i].Rank = i + 1
	}
	return records, played
}

func winChance(a, b float64) float64 {
	return 1 / (1 + math.Exp((b-a)/strengthScale))
}

// rate fills the derived fields. Mu moves with net wins scaled by schedule
// length and sigma shrinks with every game.
func rate(rec model.PlayerRecord) model.PlayerRecord {
	if rec.Games == 0 {
		rec.RatingMu, rec.RatingSigma = baseMu, baseSigma
		return rec
	}
	n := float64(rec.Games)
	rec.RatingMu = round(baseMu+muPerNetWin*float64(rec.Wins-rec.Losses)/math.Sqrt(n), 4)
	rec.RatingSigma = round(baseSigma/math.Sqrt(1+n), 4)
	rec.WinRate = float64(rec.Wins) / n
	return rec
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
