package services

import (
	"fmt"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	DecisionService DecisionService

	completer ChatCompleter
}

type idleCloser interface {
	CloseIdleConnections()
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Decision DecisionConfig
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(completer ChatCompleter, config *ServiceConfig) (*ServiceContainer, error) {
	if completer == nil {
		return nil, fmt.Errorf("chat completer cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}

	return &ServiceContainer{
		DecisionService: NewDecisionService(completer, config.Decision),
		completer:       completer,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.DecisionService == nil {
		return fmt.Errorf("decision service is nil")
	}

	return nil
}

// Close releases connections held by the chat completer
func (sc *ServiceContainer) Close() error {
	if closer, ok := sc.completer.(idleCloser); ok {
		closer.CloseIdleConnections()
	}
	return nil
}
