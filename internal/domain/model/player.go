// Package model contains domain models passed between layers.
package model

// NotAvailable is shown wherever config-derived data is missing.
const NotAvailable = "N/A"

// PlayerRecord is one row of tournament results. Records are created in bulk
// at load time and never mutated afterwards.
type PlayerRecord struct {
	Rank        int     `json:"rank"`
	Player      string  `json:"player"`
	RatingMu    float64 `json:"rating_mu"`
	RatingSigma float64 `json:"rating_sigma"`
	Wins        int     `json:"wins"`
	Draws       int     `json:"draws"`
	Losses      int     `json:"losses"`
	Games       int     `json:"games"`
	WinRate     float64 `json:"win_rate"`

	// Malformed marks a row where at least one numeric field failed to parse.
	// Float fields hold NaN in that case and integer fields hold zero.
	Malformed bool `json:"malformed,omitempty"`
}

// ModelDescriptor names the model behind an agent slot.
type ModelDescriptor struct {
	Provider string `yaml:"provider" json:"provider"`
	Name     string `yaml:"name" json:"name"`
}

// PromptPair holds the prompts an agent runs with.
type PromptPair struct {
	SystemPrompt string `yaml:"system_prompt" json:"system_prompt"`
	StepPrompt   string `yaml:"step_wise_prompt" json:"step_wise_prompt"`
}

// AgentSlot is one of the two agents making up a player.
type AgentSlot struct {
	Model   *ModelDescriptor `yaml:"model" json:"model,omitempty"`
	Prompts *PromptPair      `yaml:"prompts" json:"prompts,omitempty"`
}

// PlayerConfig is optional per-player metadata decoded from a YAML document.
type PlayerConfig struct {
	Agent0 *AgentSlot `yaml:"agent0" json:"agent0,omitempty"`
	Agent1 *AgentSlot `yaml:"agent1" json:"agent1,omitempty"`
}

// ModelInfo is the display form of both agents' models.
type ModelInfo struct {
	Agent0 string `json:"agent0"`
	Agent1 string `json:"agent1"`
}

// Prompts is the display form of all four prompts.
type Prompts struct {
	Agent0System string `json:"agent0_system"`
	Agent0Step   string `json:"agent0_step"`
	Agent1System string `json:"agent1_system"`
	Agent1Step   string `json:"agent1_step"`
}

// ModelInfo formats each agent's model as "provider - name", or N/A.
func (c *PlayerConfig) ModelInfo() ModelInfo {
	if c == nil {
		return ModelInfo{Agent0: NotAvailable, Agent1: NotAvailable}
	}
	return ModelInfo{Agent0: c.Agent0.modelLabel(), Agent1: c.Agent1.modelLabel()}
}

// Prompts returns every prompt, using N/A for absent or empty values.
func (c *PlayerConfig) Prompts() Prompts {
	if c == nil {
		return Prompts{
			Agent0System: NotAvailable,
			Agent0Step:   NotAvailable,
			Agent1System: NotAvailable,
			Agent1Step:   NotAvailable,
		}
	}
	return Prompts{
		Agent0System: c.Agent0.systemPrompt(),
		Agent0Step:   c.Agent0.stepPrompt(),
		Agent1System: c.Agent1.systemPrompt(),
		Agent1Step:   c.Agent1.stepPrompt(),
	}
}

func (a *AgentSlot) modelLabel() string {
	if a == nil || a.Model == nil {
		return NotAvailable
	}
	return orNA(a.Model.Provider) + " - " + orNA(a.Model.Name)
}

func (a *AgentSlot) systemPrompt() string {
	if a == nil || a.Prompts == nil {
		return NotAvailable
	}
	return orNA(a.Prompts.SystemPrompt)
}

func (a *AgentSlot) stepPrompt() string {
	if a == nil || a.Prompts == nil {
		return NotAvailable
	}
	return orNA(a.Prompts.StepPrompt)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
