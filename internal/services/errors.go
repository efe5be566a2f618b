package services

import (
	"errors"

	"preflop-decision-api/internal/adapters/openai"
	"preflop-decision-api/internal/models"
)

// ErrMissingAPIKey is returned when no provider credential is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not set on server")

// IsValidationError checks if an error is a scenario validation error
func IsValidationError(err error) bool {
	var validationErr *models.ValidationError
	return errors.As(err, &validationErr)
}

// IsMissingAPIKeyError checks if an error reports a missing provider credential
func IsMissingAPIKeyError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}

// AsUpstreamError extracts the provider error, if any
func AsUpstreamError(err error) (*openai.UpstreamError, bool) {
	var upstreamErr *openai.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}
