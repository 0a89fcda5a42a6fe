package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	service "github.com/okian/standings/internal/app"
	"github.com/okian/standings/internal/adapters/repository"
	"github.com/okian/standings/internal/adapters/source"
	"github.com/okian/standings/internal/domain/types"
	"github.com/okian/standings/internal/domain/view"
	"github.com/okian/standings/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const integrationCSV = `Rank,Player,Rating_Mu,Rating_Sigma,Wins,Draws,Losses,Games,Win_Rate
1,claude_team,33.1,1.1,10,1,1,12,0.8333333333333334
2,gpt_squad,29.4,1.3,8,1,3,12,0.6666666666666666
3,llama_duo,24.9,1.9,3,2,3,8,0.375
`

const claudeYAML = `agent0:
  model:
    provider: anthropic
    name: claude
  prompts:
    system_prompt: You lead the attack.
    step_wise_prompt: Plan, then act.
agent1:
  model:
    provider: anthropic
    name: claude-small
  prompts:
    system_prompt: You defend.
    step_wise_prompt: Hold the line.
`

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service over a real data directory", t, func() {
		ctx := context.Background()
		fsys := fstest.MapFS{
			"final_standings.csv":                  {Data: []byte(integrationCSV)},
			"player_configs.json":                  {Data: []byte(`["claude_team_v2.yml", "claude_team_v1.yml", "gpt_squad.yml", "notes.txt"]`)},
			"prompt_collection/claude_team_v1.yml": {Data: []byte(claudeYAML)},
			"prompt_collection/claude_team_v2.yml": {Data: []byte("agent0: {model: {provider: other, name: wrong}}")},
			"prompt_collection/gpt_squad.yml":      {Data: []byte("agent0: [broken")},
		}
		themePath := filepath.Join(t.TempDir(), "prefs", "theme.yaml")

		svc := service.New(
			service.WithSource(source.NewLoader(fsys, source.WithConcurrency(2))),
			service.WithStore(repository.NewMemoryStore()),
			service.WithThemeStore(service.NewFileThemeStore(themePath)),
			service.WithEngine(view.NewEngine(view.WithPreviewLen(8))),
			service.WithLogger(logger.Nop()),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then configs resolve through the index", func() {
			d, err := svc.Player(ctx, "claude_team")
			So(err, ShouldBeNil)
			So(d.Model.Agent0, ShouldEqual, "anthropic - claude")
			So(d.Prompts.Agent1Step, ShouldEqual, "Hold the line.")

			rep := svc.LoadReport(ctx)
			So(rep.Loaded, ShouldEqual, 1)
			So(rep.Failed, ShouldEqual, 1)
			So(rep.Missing, ShouldEqual, 1)
		})

		Convey("Then a broken config degrades to N/A", func() {
			d, err := svc.Player(ctx, "gpt_squad")
			So(err, ShouldBeNil)
			So(d.HasConfig, ShouldBeFalse)
			So(d.Model.Agent0, ShouldEqual, "N/A")
		})

		Convey("Then the rendered view carries previews and stats", func() {
			v := svc.View(ctx)
			So(v.Rows, ShouldHaveLength, 3)
			So(v.Rows[0].PromptPreview, ShouldEqual, "You lead...")
			So(v.Rows[1].PromptPreview, ShouldEqual, "N/A...")
			So(v.Stats.TotalGames, ShouldEqual, 32)
			So(v.Stats.ConfigsLoaded, ShouldEqual, 1)
		})

		Convey("When the theme is toggled", func() {
			So(svc.ToggleTheme(ctx), ShouldEqual, types.ThemeDark)

			Convey("Then it survives a restart", func() {
				data, err := os.ReadFile(themePath)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "theme: dark\n")

				again := service.New(
					service.WithSource(source.NewLoader(fsys)),
					service.WithThemeStore(service.NewFileThemeStore(themePath)),
					service.WithLogger(logger.Nop()),
				)
				So(again.Start(ctx), ShouldBeNil)
				So(again.Theme(ctx), ShouldEqual, types.ThemeDark)
			})
		})
	})
}

func TestFileThemeStore(t *testing.T) {
	Convey("Given a theme file path", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "theme.yaml")
		store := service.NewFileThemeStore(path)

		Convey("Then a missing file means light", func() {
			theme, err := store.Load(ctx)
			So(err, ShouldBeNil)
			So(theme, ShouldEqual, types.ThemeLight)
		})

		Convey("Then an unknown value means light", func() {
			So(os.WriteFile(path, []byte("theme: sepia\n"), 0o600), ShouldBeNil)
			theme, err := store.Load(ctx)
			So(err, ShouldBeNil)
			So(theme, ShouldEqual, types.ThemeLight)
		})

		Convey("Then a corrupt file is reported", func() {
			So(os.WriteFile(path, []byte("theme: [\n"), 0o600), ShouldBeNil)
			_, err := store.Load(ctx)
			So(err, ShouldNotBeNil)
		})
	})
}
