package models

// Placeholder substituted for optional scenario details that were not supplied.
const Placeholder = "-"

// Opponent profile defaults
const (
	DefaultStyle    = "standard"
	DefaultBluffing = "normal"
)

// RequiredScenarioFields lists the query parameters every decision request must carry,
// in the order they are reported back to the caller.
var RequiredScenarioFields = []string{"players", "position", "hand", "situation"}

// ScenarioRequest is a pre-flop spot as described by the caller.
// Optional details are already defaulted when a ScenarioRequest is built by ParseScenario.
type ScenarioRequest struct {
	Players   string `json:"players" form:"players" validate:"required"`
	Position  string `json:"position" form:"position" validate:"required"`
	Hand      string `json:"hand" form:"hand" validate:"required"`
	Situation string `json:"situation" form:"situation" validate:"required"`

	Limpers         string `json:"limpers" form:"limpers"`
	OpenSize        string `json:"openSize" form:"openSize"`
	OpenPos         string `json:"openPos" form:"openPos"`
	OpenCallers     string `json:"openCallers" form:"openCallers"`
	ThreeBetSize    string `json:"threeBetSize" form:"threeBetSize"`
	ThreeBetIP      string `json:"threeBetIP" form:"threeBetIP"`
	ThreeBetCallers string `json:"threeBetCallers" form:"threeBetCallers"`

	// Opponent profile
	Style    string `json:"style" form:"style"`       // aggressive | passive | standard
	Bluffing string `json:"bluffing" form:"bluffing"` // high | normal | low
}
