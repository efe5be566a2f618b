package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"preflop-decision-api/internal/models"
	"preflop-decision-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse = models.ErrorResponse

// DetailedErrorResponse represents an error response that carries a detail field
type DetailedErrorResponse = models.DetailedErrorResponse

// Error messages returned to callers
const (
	msgUpstreamError = "Upstream model error"
	msgServerError   = "Server error"
)

// errorResponse maps a decision error to its status code and body
func errorResponse(err error) (int, interface{}) {
	switch {
	case services.IsValidationError(err):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case services.IsMissingAPIKeyError(err):
		logrus.Error("Decision requested but no provider credential is configured")
		return http.StatusInternalServerError, ErrorResponse{Error: services.ErrMissingAPIKey.Error()}
	}

	if upstreamErr, ok := services.AsUpstreamError(err); ok {
		logrus.WithFields(logrus.Fields{
			"upstream_status": upstreamErr.StatusCode,
		}).Error("Upstream model error")
		return http.StatusBadGateway, DetailedErrorResponse{Error: msgUpstreamError, Detail: upstreamErr.Body}
	}

	logrus.WithError(err).Error("Decision failed")
	return http.StatusInternalServerError, DetailedErrorResponse{Error: msgServerError, Detail: err.Error()}
}
