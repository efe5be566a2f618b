package services

import (
	"fmt"

	"preflop-decision-api/internal/adapters/openai"
	"preflop-decision-api/internal/models"
)

// SystemPrompt is sent unchanged with every decision request.
const SystemPrompt = `You are a poker pre-flop decision assistant.
Return STRICT JSON ONLY with this shape:
{
  "decision": "Fold | Call | Raise | 3-bet | 4-bet/Call",
  "confidence": 0.0,
  "rationale": "One or two sentences, plain English.",
  "when_fold": ["..."],
  "when_call": ["..."],
  "when_raise": ["..."],
  "risk_flags": ["..."]
}
Rules of thumb:
- Consider price (pot odds), position, hand group (premium/strong/playable/speculative), table size, and opponent tendencies.
- More bluffs -> calling becomes better, especially in position at a good price.
- Tight/large sizings -> folding becomes better, especially out of position.
- Premium hands prefer aggression (3-bet/raise), especially in position.
- Multiway pots increase risk; tighten marginal calls out of position.
Output valid minified JSON. Do not include backticks or any extra text.`

const userPromptTemplate = `Table: %s players
Position: %s
Hand: %s
Situation: %s
Details: limpers=%s, openSize=%sxBB, openPos=%s, openCallers=%s, threeBetSize=%sxBB, threeBetIP=%s, threeBetCallers=%s
Opponent profile: style=%s, bluffing=%s
Return JSON only as specified.`

// BuildUserPrompt restates the scenario for the model.
func BuildUserPrompt(req *models.ScenarioRequest) string {
	return fmt.Sprintf(userPromptTemplate,
		req.Players, req.Position, req.Hand, req.Situation,
		req.Limpers, req.OpenSize, req.OpenPos, req.OpenCallers,
		req.ThreeBetSize, req.ThreeBetIP, req.ThreeBetCallers,
		req.Style, req.Bluffing,
	)
}

// BuildMessages returns the system and user messages, in that order.
func BuildMessages(req *models.ScenarioRequest) []openai.Message {
	return []openai.Message{
		{Role: openai.RoleSystem, Content: SystemPrompt},
		{Role: openai.RoleUser, Content: BuildUserPrompt(req)},
	}
}
