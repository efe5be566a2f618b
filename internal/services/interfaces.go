package services

import (
	"context"

	"preflop-decision-api/internal/adapters/openai"
	"preflop-decision-api/internal/models"
)

// DecisionService defines the interface for pre-flop decision operations
type DecisionService interface {
	// Decide validates the scenario, asks the model once and returns a normalized decision.
	Decide(ctx context.Context, req *models.ScenarioRequest) (*models.Decision, error)
}

// ChatCompleter is the upstream model client used by DecisionService
type ChatCompleter interface {
	Complete(ctx context.Context, apiKey string, req openai.ChatRequest) (string, error)
}
