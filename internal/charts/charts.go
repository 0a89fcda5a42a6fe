// Package charts renders the dashboard charts as standalone ECharts pages.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/okian/standings/internal/domain/model"
	"github.com/okian/standings/internal/domain/types"
)

// Chart names served by the dashboard.
const (
	NameWinRate = "winrate"
	NameRatings = "ratings"
	NameGames   = "games"
	NamePlayer  = "player"
	NameCompare = "compare"
)

const (
	topWinRateCount = 10
	gameStatsCount  = 15

	echartsLight = "white"
	echartsDark  = "chalk"
)

// Outcome colors: wins, draws, losses.
var outcomeColors = []string{"#27AE60", "#F39C12", "#E74C3C"}

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Width  string // Chart width (e.g., "900px")
	Height string // Chart height (e.g., "500px")
	Theme  types.Theme
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "100%",
		Height: "420px",
		Theme:  types.ThemeLight,
	}
}

func (c ChartConfig) init(title string) opts.Initialization {
	theme := echartsLight
	if c.Theme == types.ThemeDark {
		theme = echartsDark
	}
	return opts.Initialization{
		PageTitle: title,
		Width:     c.Width,
		Height:    c.Height,
		Theme:     theme,
	}
}

// RenderWinRate draws the ten best win rates as a bar chart.
func RenderWinRate(w io.Writer, records []model.PlayerRecord, cfg ChartConfig) error {
	points := TopWinRates(records, topWinRateCount)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cfg.init("Top Win Rates")),
		charts.WithTitleOpts(opts.Title{Title: "Top 10 Players by Win Rate"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Win Rate (%)", Min: 0, Max: 100}),
		charts.WithColorsOpts(opts.Colors{"#3498DB"}),
	)

	labels := make([]string, len(points))
	data := make([]opts.BarData, len(points))
	for i, p := range points {
		labels[i] = p.Label
		data[i] = opts.BarData{Value: p.Value}
	}
	bar.SetXAxis(labels).AddSeries("Win Rate (%)", data)

	return render(bar, w)
}

// RenderRatings draws the rating distribution.
func RenderRatings(w io.Writer, records []model.PlayerRecord, cfg ChartConfig) error {
	bins := RatingDistribution(records)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cfg.init("Rating Distribution")),
		charts.WithTitleOpts(opts.Title{Title: "Rating Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Rating Range (μ)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Players"}),
		charts.WithColorsOpts(opts.Colors{"#2ECC71"}),
	)

	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.Count}
	}
	bar.SetXAxis(labels).AddSeries("Number of Players", data)

	return render(bar, w)
}

// RenderGames draws wins, draws and losses of the first fifteen players.
func RenderGames(w io.Writer, records []model.PlayerRecord, cfg ChartConfig) error {
	o := GameOutcomes(records, gameStatsCount)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cfg.init("Game Statistics")),
		charts.WithTitleOpts(opts.Title{Title: "Game Statistics"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Games"}),
		charts.WithColorsOpts(opts.Colors(outcomeColors)),
	)

	bar.SetXAxis(o.Labels).
		AddSeries("Wins", barData(o.Wins)).
		AddSeries("Draws", barData(o.Draws)).
		AddSeries("Losses", barData(o.Losses))

	return render(bar, w)
}

func barData(values []int) []opts.BarData {
	out := make([]opts.BarData, len(values))
	for i, v := range values {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func outcomePie(rec model.PlayerRecord, cfg ChartConfig) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(cfg.init(rec.Player)),
		charts.WithTitleOpts(opts.Title{Title: rec.Player}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithColorsOpts(opts.Colors(outcomeColors)),
	)

	points := PlayerOutcome(rec)
	data := make([]opts.PieData, len(points))
	for i, p := range points {
		data[i] = opts.PieData{Name: p.Label, Value: p.Value}
	}
	pie.AddSeries("Results", data).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
		)
	return pie
}

// RenderPlayer draws one player's results as a doughnut.
func RenderPlayer(w io.Writer, rec model.PlayerRecord, cfg ChartConfig) error {
	return render(outcomePie(rec, cfg), w)
}

// RenderCompare draws two players' doughnuts side by side on one page.
func RenderCompare(w io.Writer, a, b model.PlayerRecord, cfg ChartConfig) error {
	half := cfg
	half.Width = "48%"

	page := components.NewPage()
	page.PageTitle = a.Player + " vs " + b.Player
	page.AddCharts(outcomePie(a, half), outcomePie(b, half))
	return render(page, w)
}

type renderer interface {
	Render(w io.Writer) error
}

func render(r renderer, w io.Writer) error {
	if err := r.Render(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
