package view_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/types"
	"github.com/okian/standings/internal/domain/view"
	. "github.com/smartystreets/goconvey/convey"
)

func fixtures() []model.PlayerRecord {
	return []model.PlayerRecord{
		{Rank: 1, Player: "Alpha", RatingMu: 35.2, RatingSigma: 1.1, Wins: 9, Draws: 0, Losses: 3, Games: 12, WinRate: 0.75},
		{Rank: 2, Player: "Beta", RatingMu: 30.0, RatingSigma: 1.3, Wins: 3, Draws: 1, Losses: 6, Games: 10, WinRate: 0.30},
		{Rank: 3, Player: "Gamma", RatingMu: 30.0, RatingSigma: 2.0, Wins: 10, Draws: 1, Losses: 1, Games: 12, WinRate: 0.85},
		{Rank: 4, Player: "delta-bot", RatingMu: 22.5, RatingSigma: 0.9, Wins: 5, Draws: 2, Losses: 5, Games: 12, WinRate: 0.45},
		{Rank: 5, Player: "Epsilon", RatingMu: 18.0, RatingSigma: 3.2, Wins: 6, Draws: 0, Losses: 4, Games: 10, WinRate: 0.60},
		{Rank: 6, Player: "Zeta", RatingMu: 12.4, RatingSigma: 2.7, Wins: 4, Draws: 0, Losses: 6, Games: 10, WinRate: 0.40},
	}
}

func players(rows []view.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player
	}
	return out
}

func names(records []model.PlayerRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Player
	}
	return out
}

func TestRender_NoFilters(t *testing.T) {
	Convey("Given the default state with no search and all filters", t, func() {
		st := view.NewState()

		Convey("When sorting by rank", func() {
			rows := view.Render(fixtures(), nil, st)

			Convey("Then every record is returned in rank order", func() {
				diff := cmp.Diff([]string{"Alpha", "Beta", "Gamma", "delta-bot", "Epsilon", "Zeta"}, players(rows))
				So(diff, ShouldBeEmpty)
			})
		})

		Convey("When sorting by rating", func() {
			st.Sort = types.SortRating
			rows := view.Render(fixtures(), nil, st)

			Convey("Then ratings descend and equal ratings keep input order", func() {
				diff := cmp.Diff([]string{"Alpha", "Beta", "Gamma", "delta-bot", "Epsilon", "Zeta"}, players(rows))
				So(diff, ShouldBeEmpty)
				for i := 1; i < len(rows); i++ {
					So(rows[i-1].RatingMu, ShouldBeGreaterThanOrEqualTo, rows[i].RatingMu)
				}
			})
		})

		Convey("When sorting by win rate", func() {
			st.Sort = types.SortWinRate
			rows := view.Render(fixtures(), nil, st)

			Convey("Then win rates descend", func() {
				So(players(rows), ShouldResemble, []string{"Gamma", "Alpha", "Epsilon", "delta-bot", "Zeta", "Beta"})
			})
		})

		Convey("When sorting by games", func() {
			st.Sort = types.SortGames
			rows := view.Render(fixtures(), nil, st)

			Convey("Then full schedules come first in their original order", func() {
				So(players(rows), ShouldResemble, []string{"Alpha", "Gamma", "delta-bot", "Beta", "Epsilon", "Zeta"})
			})
		})

		Convey("When the input is shuffled and sorted by rank", func() {
			in := fixtures()
			in[0], in[5] = in[5], in[0]
			rows := view.Render(in, nil, st)

			Convey("Then the output is in rank order and the input is untouched", func() {
				So(players(rows)[0], ShouldEqual, "Alpha")
				So(in[0].Player, ShouldEqual, "Zeta")
			})
		})
	})
}

func TestRender_Filters(t *testing.T) {
	Convey("Given the fixture records", t, func() {
		st := view.NewState()

		Convey("When filtering by each win-rate band", func() {
			byBand := map[types.WinRateFilter][]string{}
			for _, f := range []types.WinRateFilter{types.WinRateHigh, types.WinRateMedium, types.WinRateLow} {
				st.WinRate = f
				byBand[f] = players(view.Render(fixtures(), nil, st))
			}

			Convey("Then the bands use >=0.6, [0.4,0.6) and <0.4", func() {
				So(byBand[types.WinRateHigh], ShouldResemble, []string{"Alpha", "Gamma", "Epsilon"})
				So(byBand[types.WinRateMedium], ShouldResemble, []string{"delta-bot", "Zeta"})
				So(byBand[types.WinRateLow], ShouldResemble, []string{"Beta"})
			})

			Convey("And together they partition the full set", func() {
				seen := map[string]int{}
				for _, ps := range byBand {
					for _, p := range ps {
						seen[p]++
					}
				}
				So(len(seen), ShouldEqual, len(fixtures()))
				for _, n := range seen {
					So(n, ShouldEqual, 1)
				}
			})
		})

		Convey("When filtering by games", func() {
			st.Games = types.GamesFull
			full := players(view.Render(fixtures(), nil, st))
			st.Games = types.GamesPartial
			partial := players(view.Render(fixtures(), nil, st))

			Convey("Then full means exactly 12 games and partial is the rest", func() {
				So(full, ShouldResemble, []string{"Alpha", "Gamma", "delta-bot"})
				So(partial, ShouldResemble, []string{"Beta", "Epsilon", "Zeta"})
			})
		})

		Convey("When searching with mixed case", func() {
			st.SearchTerm = "DELTA"
			rows := view.Render(fixtures(), nil, st)

			Convey("Then the match is a case-insensitive substring", func() {
				So(players(rows), ShouldResemble, []string{"delta-bot"})
			})
		})

		Convey("When search and filters are combined", func() {
			st.SearchTerm = "a"
			st.WinRate = types.WinRateHigh
			st.Games = types.GamesFull
			rows := view.Render(fixtures(), nil, st)

			Convey("Then all predicates must hold", func() {
				So(players(rows), ShouldResemble, []string{"Alpha", "Gamma"})
			})
		})

		Convey("When the filter values are unrecognized", func() {
			st.WinRate = types.WinRateFilter("extreme")
			st.Games = types.GamesFilter("most")
			st.Sort = types.SortKey("name")
			rows := view.Render(fixtures(), nil, st)

			Convey("Then they behave like all and rank", func() {
				So(len(rows), ShouldEqual, len(fixtures()))
				So(rows[0].Player, ShouldEqual, "Alpha")
			})
		})
	})

	Convey("Given the two-record example", t, func() {
		records := []model.PlayerRecord{
			{Rank: 1, Player: "Alpha", Games: 12, WinRate: 0.75},
			{Rank: 2, Player: "Beta", Games: 10, WinRate: 0.30},
		}
		st := view.NewState()
		st.Games = types.GamesFull

		Convey("Then the full games filter yields only Alpha", func() {
			So(players(view.Render(records, nil, st)), ShouldResemble, []string{"Alpha"})
		})
	})

	Convey("Given a malformed row whose win rate is NaN", t, func() {
		records := append(fixtures(), model.PlayerRecord{
			Rank: 7, Player: "Broken", RatingMu: math.NaN(), WinRate: math.NaN(), Malformed: true,
		})
		st := view.NewState()

		Convey("Then it is listed under all", func() {
			So(players(view.Render(records, nil, st)), ShouldContain, "Broken")
		})

		Convey("Then it falls in none of the win-rate bands", func() {
			for _, f := range []types.WinRateFilter{types.WinRateHigh, types.WinRateMedium, types.WinRateLow} {
				st.WinRate = f
				So(players(view.Render(records, nil, st)), ShouldNotContain, "Broken")
			}
		})
	})
}

func TestRender_Pin(t *testing.T) {
	Convey("Given a pinned player present in the filtered set", t, func() {
		st := view.NewState()
		st.Pin.Toggle("Epsilon")

		for _, key := range []types.SortKey{types.SortRank, types.SortRating, types.SortWinRate, types.SortGames} {
			st.Sort = key
			rows := view.Render(fixtures(), nil, st)

			Convey("Then it is first when sorting by "+string(key), func() {
				So(rows[0].Player, ShouldEqual, "Epsilon")
				So(rows[0].Pinned, ShouldBeTrue)
				So(rows[0].Highlight, ShouldEqual, types.HighlightPinned)
			})
		}

		Convey("And the remaining rows keep their sorted order", func() {
			st.Sort = types.SortRank
			rows := view.Render(fixtures(), nil, st)
			So(players(rows), ShouldResemble, []string{"Epsilon", "Alpha", "Beta", "Gamma", "delta-bot", "Zeta"})
		})
	})

	Convey("Given a pinned player that is filtered out", t, func() {
		st := view.NewState()
		st.Pin.Toggle("Beta")
		st.WinRate = types.WinRateHigh
		rows := view.Render(fixtures(), nil, st)

		Convey("Then no row is pinned and order is the plain sort", func() {
			So(players(rows), ShouldResemble, []string{"Alpha", "Gamma", "Epsilon"})
			for _, r := range rows {
				So(r.Pinned, ShouldBeFalse)
			}
		})
	})

	Convey("Given a stale pin naming no record", t, func() {
		st := view.NewState()
		st.Pin.Toggle("Ghost")

		Convey("Then rendering is unaffected", func() {
			So(len(view.Render(fixtures(), nil, st)), ShouldEqual, len(fixtures()))
		})
	})
}

func TestRender_Highlight(t *testing.T) {
	Convey("Given both highlight toggles enabled", t, func() {
		st := view.NewState()
		st.HighlightTop3 = true
		st.HighlightWinRate = true

		Convey("When a top-3 player with win rate above 0.8 is pinned", func() {
			st.Pin.Toggle("Gamma")
			rows := view.Render(fixtures(), nil, st)

			Convey("Then only the pinned annotation applies", func() {
				So(rows[0].Player, ShouldEqual, "Gamma")
				So(rows[0].Highlight, ShouldEqual, types.HighlightPinned)
			})
		})

		Convey("When nothing is pinned", func() {
			rows := view.Render(fixtures(), nil, st)
			byName := map[string]types.Highlight{}
			for _, r := range rows {
				byName[r.Player] = r.Highlight
			}

			Convey("Then win rate outranks top 3", func() {
				So(byName["Gamma"], ShouldEqual, types.HighlightHighWinRate)
				So(byName["Alpha"], ShouldEqual, types.HighlightTop3)
				So(byName["Beta"], ShouldEqual, types.HighlightTop3)
				So(byName["delta-bot"], ShouldEqual, types.HighlightNone)
			})
		})
	})

	Convey("Given both highlight toggles disabled", t, func() {
		st := view.NewState()
		st.HighlightTop3 = false
		rows := view.Render(fixtures(), nil, st)

		Convey("Then no row is highlighted but rank badges remain", func() {
			for _, r := range rows {
				So(r.Highlight, ShouldEqual, types.HighlightNone)
			}
			So(rows[0].RankBadge, ShouldEqual, 1)
			So(rows[3].RankBadge, ShouldEqual, 0)
		})
	})
}

func TestRender_DerivedFields(t *testing.T) {
	Convey("Given configs for some players", t, func() {
		long := strings.Repeat("x", 200)
		configs := map[string]*model.PlayerConfig{
			"Alpha": {
				Agent0: &model.AgentSlot{
					Model:   &model.ModelDescriptor{Provider: "anthropic", Name: "claude"},
					Prompts: &model.PromptPair{SystemPrompt: "short prompt"},
				},
				Agent1: &model.AgentSlot{Model: &model.ModelDescriptor{Provider: "openai", Name: "gpt"}},
			},
			"Beta": {Agent0: &model.AgentSlot{Prompts: &model.PromptPair{SystemPrompt: long}}},
		}
		st := view.NewState()
		st.Selection.Toggle("Beta")
		rows := view.Render(fixtures(), configs, st)

		Convey("Then model info is formatted or N/A", func() {
			So(rows[0].Model, ShouldResemble, model.ModelInfo{Agent0: "anthropic - claude", Agent1: "openai - gpt"})
			So(rows[1].Model, ShouldResemble, model.ModelInfo{Agent0: "N/A", Agent1: "N/A"})
		})

		Convey("And the prompt preview always ends with an ellipsis", func() {
			So(rows[0].PromptPreview, ShouldEqual, "short prompt...")
			So(rows[1].PromptPreview, ShouldEqual, strings.Repeat("x", 150)+"...")
			So(rows[2].PromptPreview, ShouldEqual, "N/A...")
		})

		Convey("And tiers use the 0.6 and 0.4 breakpoints", func() {
			So(rows[0].Tier, ShouldEqual, types.TierHigh)
			So(rows[1].Tier, ShouldEqual, types.TierLow)
			So(rows[3].Tier, ShouldEqual, types.TierMedium)
			So(rows[4].Tier, ShouldEqual, types.TierHigh)
			So(rows[5].Tier, ShouldEqual, types.TierMedium)
		})

		Convey("And selection is reflected per row", func() {
			So(rows[1].Selected, ShouldBeTrue)
			So(rows[0].Selected, ShouldBeFalse)
		})
	})

	Convey("Given an engine with custom tuning", t, func() {
		e := view.NewEngine(view.WithFullGames(10), view.WithPreviewLen(3))
		st := view.NewState()
		st.Games = types.GamesFull
		cfg := map[string]*model.PlayerConfig{
			"Beta": {Agent0: &model.AgentSlot{Prompts: &model.PromptPair{SystemPrompt: "héllo"}}},
		}
		rows := e.Render(fixtures(), cfg, st)

		Convey("Then full games and preview length follow the options", func() {
			So(players(rows), ShouldResemble, []string{"Beta", "Epsilon", "Zeta"})
			So(rows[0].PromptPreview, ShouldEqual, "hél...")
		})
	})

	Convey("Given a malformed win rate", t, func() {
		Convey("Then it is labelled low", func() {
			So(view.TierFor(math.NaN()), ShouldEqual, types.TierLow)
		})
	})
}

func TestEngine_Select(t *testing.T) {
	Convey("Given a pinned player and a rating sort", t, func() {
		st := view.NewState()
		st.Sort = types.SortRating
		st.Pin.Toggle("Zeta")
		st.Games = types.GamesPartial

		Convey("Then Select ignores the pin and keeps the sort order", func() {
			out := view.NewEngine().Select(fixtures(), st)
			So(names(out), ShouldResemble, []string{"Beta", "Epsilon", "Zeta"})
		})
	})
}

func TestRow_MarshalJSON(t *testing.T) {
	Convey("Given a rendered row with a malformed rating", t, func() {
		recs := fixtures()[:1]
		recs[0].RatingMu = math.NaN()
		recs[0].Malformed = true
		rows := view.Render(recs, nil, view.NewState())

		Convey("Then it encodes as one flat object", func() {
			b, err := json.Marshal(rows[0])
			So(err, ShouldBeNil)

			var got map[string]any
			So(json.Unmarshal(b, &got), ShouldBeNil)
			So(got["player"], ShouldEqual, "Alpha")
			So(got["rating_mu"], ShouldBeNil)
			So(got["win_rate"], ShouldEqual, 0.75)
			So(got["highlight"], ShouldEqual, "top3")
			So(got["rank_badge"], ShouldEqual, 1.0)
			So(got["model"], ShouldResemble, map[string]any{"agent0": "N/A", "agent1": "N/A"})
			So(got["prompt_preview"], ShouldEqual, "N/A...")
		})
	})
}
