package models

// Decision defaults applied when the model omits or mistypes a field
const (
	DefaultDecision   = "Call"
	DefaultConfidence = 0.5
	DefaultRationale  = "No rationale provided."
)

// Decision is the normalized answer returned to callers. Every field is always present.
type Decision struct {
	Decision   string   `json:"decision"`
	Confidence float64  `json:"confidence"`
	Rationale  string   `json:"rationale"`
	WhenFold   []string `json:"when_fold"`
	WhenCall   []string `json:"when_call"`
	WhenRaise  []string `json:"when_raise"`
	RiskFlags  []string `json:"risk_flags"`
}

// FallbackDecision returns the conservative answer used when the model reply is not a JSON object.
func FallbackDecision() map[string]interface{} {
	return map[string]interface{}{
		"decision":   "Call",
		"confidence": 0.5,
		"rationale":  "Fallback: price/position looks acceptable; JSON from model was invalid.",
		"when_fold":  []interface{}{"Facing large raises out of position", "Tight ranges from early position"},
		"when_call":  []interface{}{"Good price vs bluff-heavy opponents", "In position with playable hands"},
		"when_raise": []interface{}{"Premium hands for value", "Late position vs weak opens"},
		"risk_flags": []interface{}{"Model JSON parse failed; used fallback"},
	}
}
