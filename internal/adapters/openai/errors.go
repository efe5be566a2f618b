package openai

import (
	"errors"
	"fmt"
)

// UpstreamError is returned when the provider answers with a non-2xx status.
// Body holds the raw response body for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat completion failed with status %d", e.StatusCode)
}

// IsUpstreamError reports whether err wraps an *UpstreamError
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
