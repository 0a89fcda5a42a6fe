package view

import (
	"time"

	"github.com/okian/standings/internal/domain/model"
)

// Response is everything the dashboard needs to draw the table.
type Response struct {
	Rows     []Row       `json:"rows"`
	Settings Settings    `json:"settings"`
	Stats    model.Stats `json:"stats"`
	Total    int         `json:"total"`
	Shown    int         `json:"shown"`
	LoadedAt time.Time   `json:"loaded_at"`
	Error    string      `json:"error,omitempty"`
}

// PlayerDetail is the full record of one player with its config metadata.
type PlayerDetail struct {
	Record    model.PlayerRecord `json:"record"`
	Model     model.ModelInfo    `json:"model"`
	Prompts   model.Prompts      `json:"prompts"`
	HasConfig bool               `json:"has_config"`
	Pinned    bool               `json:"pinned"`
	Selected  bool               `json:"selected"`
}

// Comparison holds the two selected players in selection order.
type Comparison struct {
	Players [2]PlayerDetail `json:"players"`
}
