package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an upstream failure.
type ErrorKind string

const (
	ErrKindNotFound    ErrorKind = "not_found"
	ErrKindRateLimited ErrorKind = "rate_limited"
	ErrKindBadRequest  ErrorKind = "bad_request"
	ErrKindUpstream    ErrorKind = "upstream"
)

// APIError is the single tagged error type for upstream failures. It keeps
// the HTTP status and the raw response payload for diagnostics. Upstream
// errors are never retried by this layer.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrKindNotFound:
		return "restaurant not found"
	case ErrKindRateLimited:
		return "upstream rate limit exceeded"
	case ErrKindBadRequest:
		return fmt.Sprintf("upstream rejected request (HTTP %d): %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("upstream request failed (HTTP %d): %s", e.StatusCode, e.Body)
	}
}

// NewAPIError maps an upstream HTTP status to the error taxonomy.
func NewAPIError(statusCode int, body []byte) *APIError {
	kind := ErrKindUpstream
	switch statusCode {
	case 404:
		kind = ErrKindNotFound
	case 429:
		kind = ErrKindRateLimited
	case 400:
		kind = ErrKindBadRequest
	}
	return &APIError{Kind: kind, StatusCode: statusCode, Body: body}
}

// AsAPIError unwraps err to an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
