package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"preflop-decision-api/internal/adapters/openai"
	"preflop-decision-api/internal/models"
)

// DecisionConfig holds the upstream model settings used by the decision service
type DecisionConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// decisionService implements the DecisionService interface
type decisionService struct {
	completer ChatCompleter
	config    DecisionConfig
	validator *validator.Validate
}

// NewDecisionService creates a new decision service instance
func NewDecisionService(completer ChatCompleter, config DecisionConfig) DecisionService {
	return &decisionService{
		completer: completer,
		config:    config,
		validator: newScenarioValidator(),
	}
}

// newScenarioValidator reports fields by their query parameter names.
func newScenarioValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseScenario builds a ScenarioRequest from query parameters. Absent optional
// details become the placeholder; present but empty values are kept as they are.
func ParseScenario(values url.Values) *models.ScenarioRequest {
	optional := func(key, fallback string) string {
		if _, ok := values[key]; !ok {
			return fallback
		}
		return values.Get(key)
	}

	return &models.ScenarioRequest{
		Players:   values.Get("players"),
		Position:  values.Get("position"),
		Hand:      values.Get("hand"),
		Situation: values.Get("situation"),

		Limpers:         optional("limpers", models.Placeholder),
		OpenSize:        optional("openSize", models.Placeholder),
		OpenPos:         optional("openPos", models.Placeholder),
		OpenCallers:     optional("openCallers", models.Placeholder),
		ThreeBetSize:    optional("threeBetSize", models.Placeholder),
		ThreeBetIP:      optional("threeBetIP", models.Placeholder),
		ThreeBetCallers: optional("threeBetCallers", models.Placeholder),

		Style:    optional("style", models.DefaultStyle),
		Bluffing: optional("bluffing", models.DefaultBluffing),
	}
}

// Decide validates the scenario and asks the model for a decision
func (s *decisionService) Decide(ctx context.Context, req *models.ScenarioRequest) (*models.Decision, error) {
	if req == nil {
		return nil, fmt.Errorf("scenario request cannot be nil")
	}

	if err := s.validateScenario(req); err != nil {
		return nil, err
	}

	if s.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	raw, err := s.completer.Complete(ctx, s.config.APIKey, openai.ChatRequest{
		Model:       s.config.Model,
		Temperature: s.config.Temperature,
		Messages:    BuildMessages(req),
	})
	if err != nil {
		return nil, fmt.Errorf("request decision: %w", err)
	}

	decision, usedFallback := NormalizeCompletion(raw)
	if usedFallback {
		logrus.WithFields(logrus.Fields{
			"hand":       req.Hand,
			"position":   req.Position,
			"completion": truncate(strings.TrimSpace(raw), 300),
		}).Warn("Model reply was not a JSON object, using fallback decision")
	}

	return decision, nil
}

func (s *decisionService) validateScenario(req *models.ScenarioRequest) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate scenario: %w", err)
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		missing = append(missing, fe.Field())
	}
	return &models.ValidationError{
		Fields:  models.RequiredScenarioFields,
		Missing: missing,
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
