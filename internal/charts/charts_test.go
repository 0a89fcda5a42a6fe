package charts

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func manyRecords(n int) []model.PlayerRecord {
	out := make([]model.PlayerRecord, n)
	for i := range out {
		out[i] = model.PlayerRecord{
			Rank:     i + 1,
			Player:   fmt.Sprintf("p%02d", i+1),
			RatingMu: float64(45 - 2*i),
			Wins:     i,
			Draws:    1,
			Losses:   n - i,
			Games:    n + 1,
			WinRate:  float64(i) / float64(n),
		}
	}
	return out
}

func TestTopWinRates(t *testing.T) {
	Convey("Given twenty players", t, func() {
		recs := manyRecords(20)

		Convey("Then the ten best come back as percentages, best first", func() {
			top := TopWinRates(recs, 10)
			So(top, ShouldHaveLength, 10)
			So(top[0].Label, ShouldEqual, "p20")
			So(top[0].Value, ShouldAlmostEqual, 95.0, 1e-9)
			So(top[9].Label, ShouldEqual, "p11")
		})

		Convey("Then the input order is untouched", func() {
			_ = TopWinRates(recs, 10)
			So(recs[0].Player, ShouldEqual, "p01")
		})
	})

	Convey("Given ties and a NaN win rate", t, func() {
		recs := []model.PlayerRecord{
			{Player: "a", WinRate: 0.5},
			{Player: "b", WinRate: math.NaN()},
			{Player: "c", WinRate: 0.5},
		}

		Convey("Then ties keep load order and NaN is dropped", func() {
			top := TopWinRates(recs, 10)
			So(top, ShouldResemble, []DataPoint{{Label: "a", Value: 50}, {Label: "c", Value: 50}})
		})
	})
}

func TestRatingDistribution(t *testing.T) {
	Convey("Given ratings on and around the bin edges", t, func() {
		recs := []model.PlayerRecord{
			{RatingMu: 0}, {RatingMu: 14.99}, {RatingMu: 15}, {RatingMu: 25},
			{RatingMu: 39.9}, {RatingMu: 40}, {RatingMu: 120},
			{RatingMu: -1}, {RatingMu: math.NaN()},
		}
		bins := RatingDistribution(recs)

		Convey("Then lower bounds are inclusive and outliers are skipped", func() {
			counts := make([]int, len(bins))
			for i, b := range bins {
				counts[i] = b.Count
			}
			So(counts, ShouldResemble, []int{2, 1, 0, 1, 0, 1, 2})
			So(bins[6].Label, ShouldEqual, "40+")
		})
	})
}

func TestGameOutcomes(t *testing.T) {
	Convey("Given more players than the chart shows", t, func() {
		o := GameOutcomes(manyRecords(20), 15)

		Convey("Then the first fifteen in load order are used", func() {
			So(o.Labels, ShouldHaveLength, 15)
			So(o.Labels[0], ShouldEqual, "p01")
			So(o.Wins[14], ShouldEqual, 14)
			So(o.Losses[0], ShouldEqual, 20)
		})
	})

	Convey("Given fewer players", t, func() {
		o := GameOutcomes(manyRecords(3), 15)
		So(o.Labels, ShouldHaveLength, 3)
	})
}

func TestRender(t *testing.T) {
	Convey("Given loaded records", t, func() {
		recs := manyRecords(12)
		cfg := DefaultChartConfig()

		Convey("When rendering each page", func() {
			var win, ratings, games, player, compare bytes.Buffer
			So(RenderWinRate(&win, recs, cfg), ShouldBeNil)
			So(RenderRatings(&ratings, recs, cfg), ShouldBeNil)
			So(RenderGames(&games, recs, cfg), ShouldBeNil)
			So(RenderPlayer(&player, recs[0], cfg), ShouldBeNil)
			So(RenderCompare(&compare, recs[0], recs[1], cfg), ShouldBeNil)

			Convey("Then each is an ECharts page carrying its data", func() {
				So(win.String(), ShouldContainSubstring, "echarts")
				So(win.String(), ShouldContainSubstring, "p12")
				So(ratings.String(), ShouldContainSubstring, "35-40")
				So(games.String(), ShouldContainSubstring, "Losses")
				So(player.String(), ShouldContainSubstring, "Wins")
				So(compare.String(), ShouldContainSubstring, "p01")
				So(compare.String(), ShouldContainSubstring, "p02")
			})
		})

		Convey("When rendering with the dark theme", func() {
			cfg.Theme = types.ThemeDark
			var buf bytes.Buffer
			So(RenderWinRate(&buf, recs, cfg), ShouldBeNil)

			Convey("Then the dark palette is requested", func() {
				So(buf.String(), ShouldContainSubstring, "chalk")
			})
		})
	})

	Convey("Given no records", t, func() {
		var buf bytes.Buffer

		Convey("Then the charts still render", func() {
			So(RenderWinRate(&buf, nil, DefaultChartConfig()), ShouldBeNil)
			So(RenderGames(&buf, nil, DefaultChartConfig()), ShouldBeNil)
		})
	})
}
