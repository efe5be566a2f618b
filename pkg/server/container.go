package server

import (
	"fmt"

	"preflop-decision-api/internal/adapters/openai"
	"preflop-decision-api/internal/config"
	"preflop-decision-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	DecisionService services.DecisionService

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container.
// A missing provider credential is not an error here; it is reported per request.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client := openai.NewClient(cfg.OpenAI.BaseURL)

	serviceContainer, err := services.NewServiceContainer(client, &services.ServiceConfig{
		Decision: services.DecisionConfig{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	return &Container{
		Config:          cfg,
		DecisionService: serviceContainer.DecisionService,
		services:        serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	return nil
}
