package models

import (
	"fmt"
	"strings"
)

// ErrorResponse represents the error body returned for client and configuration errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailedErrorResponse is returned for upstream and server failures.
// Detail is always encoded, even when empty.
type DetailedErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// ValidationError represents a validation error with field-specific details
type ValidationError struct {
	Fields  []string `json:"fields"`
	Missing []string `json:"missing,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(ve.Fields, ", "))
}
