package services

import (
	"net/url"
	"strings"
	"testing"

	"preflop-decision-api/internal/adapters/openai"
)

func TestBuildUserPromptDefaults(t *testing.T) {
	req := ParseScenario(url.Values{
		"players":   {"6"},
		"position":  {"BTN"},
		"hand":      {"AKo"},
		"situation": {"facing open"},
	})

	want := `Table: 6 players
Position: BTN
Hand: AKo
Situation: facing open
Details: limpers=-, openSize=-xBB, openPos=-, openCallers=-, threeBetSize=-xBB, threeBetIP=-, threeBetCallers=-
Opponent profile: style=standard, bluffing=normal
Return JSON only as specified.`

	if got := BuildUserPrompt(req); got != want {
		t.Errorf("Unexpected user prompt:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildUserPromptWithDetails(t *testing.T) {
	req := ParseScenario(url.Values{
		"players":         {"9"},
		"position":        {"SB"},
		"hand":            {"QJs"},
		"situation":       {"facing 3-bet"},
		"openSize":        {"3"},
		"openPos":         {"CO"},
		"threeBetSize":    {"10"},
		"threeBetIP":      {"true"},
		"threeBetCallers": {"1"},
		"style":           {"aggressive"},
		"bluffing":        {"high"},
	})

	prompt := BuildUserPrompt(req)
	for _, fragment := range []string{
		"Table: 9 players",
		"openSize=3xBB, openPos=CO",
		"threeBetSize=10xBB, threeBetIP=true, threeBetCallers=1",
		"limpers=-",
		"style=aggressive, bluffing=high",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("Prompt missing %q:\n%s", fragment, prompt)
		}
	}
}

func TestBuildMessages(t *testing.T) {
	first := BuildMessages(ParseScenario(url.Values{"players": {"6"}, "position": {"BTN"}, "hand": {"AKo"}, "situation": {"facing open"}}))
	second := BuildMessages(ParseScenario(url.Values{"players": {"2"}, "position": {"BB"}, "hand": {"72o"}, "situation": {"facing limp"}}))

	if len(first) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(first))
	}
	if first[0].Role != openai.RoleSystem || first[1].Role != openai.RoleUser {
		t.Errorf("Unexpected roles %s, %s", first[0].Role, first[1].Role)
	}
	if first[0].Content != SystemPrompt || second[0].Content != SystemPrompt {
		t.Error("System message must be identical for every request")
	}
	if first[1].Content == second[1].Content {
		t.Error("User message should vary with the scenario")
	}
}
