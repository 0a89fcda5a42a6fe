package model_test

import (
	"testing"

	"github.com/okian/standings/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayerConfig_ModelInfo(t *testing.T) {
	Convey("Given player configs with varying completeness", t, func() {
		Convey("When the config is nil", func() {
			var cfg *model.PlayerConfig
			info := cfg.ModelInfo()

			Convey("Then both agents should be N/A", func() {
				So(info.Agent0, ShouldEqual, model.NotAvailable)
				So(info.Agent1, ShouldEqual, model.NotAvailable)
			})
		})

		Convey("When only agent0 declares a model", func() {
			cfg := &model.PlayerConfig{
				Agent0: &model.AgentSlot{Model: &model.ModelDescriptor{Provider: "openai", Name: "gpt-4o"}},
				Agent1: &model.AgentSlot{},
			}
			info := cfg.ModelInfo()

			Convey("Then agent0 is formatted and agent1 falls back", func() {
				So(info.Agent0, ShouldEqual, "openai - gpt-4o")
				So(info.Agent1, ShouldEqual, model.NotAvailable)
			})
		})
	})
}

func TestPlayerConfig_Prompts(t *testing.T) {
	Convey("Given a config with partial prompts", t, func() {
		cfg := &model.PlayerConfig{
			Agent0: &model.AgentSlot{Prompts: &model.PromptPair{SystemPrompt: "be terse"}},
		}
		p := cfg.Prompts()

		Convey("Then present prompts are returned and the rest are N/A", func() {
			So(p.Agent0System, ShouldEqual, "be terse")
			So(p.Agent0Step, ShouldEqual, model.NotAvailable)
			So(p.Agent1System, ShouldEqual, model.NotAvailable)
			So(p.Agent1Step, ShouldEqual, model.NotAvailable)
		})
	})

	Convey("Given no config at all", t, func() {
		var cfg *model.PlayerConfig

		Convey("Then every prompt is N/A", func() {
			So(cfg.Prompts(), ShouldResemble, model.Prompts{
				Agent0System: model.NotAvailable,
				Agent0Step:   model.NotAvailable,
				Agent1System: model.NotAvailable,
				Agent1Step:   model.NotAvailable,
			})
		})
	})
}
