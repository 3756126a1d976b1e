// Package errors provides the standardized error taxonomy for the client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Rejected locally before any network call; never mutates state.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// Identity absent or role mismatch at a gated route. Resolved by
	// redirect, never rendered as an error banner.
	ErrCodeAuthorization ErrorCode = "AUTHORIZATION_ERROR"

	// Credentials rejected by the platform at login.
	ErrCodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"

	// Resource (interview, application) does not resolve server-side.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Transport-level failure: connection refused, timeout, DNS.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"

	// 5xx from the platform.
	ErrCodeServer ErrorCode = "SERVER_ERROR"

	// Response body did not match the expected schema.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ClientError is a structured application error.
type ClientError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("ClientError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a non-retryable local validation error.
func NewValidationError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeValidation,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthorizationError creates a non-retryable authorization error.
func NewAuthorizationError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeAuthorization,
		Message:   "Not authorized",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthenticationError creates a non-retryable login failure.
func NewAuthenticationError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeAuthentication,
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable resource lookup error.
func NewNotFoundError(resource string) *ClientError {
	return &ClientError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Details:   resource,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNetworkError creates a retryable transport error.
func NewNetworkError(err error) *ClientError {
	return &ClientError{
		Code:      ErrCodeNetwork,
		Message:   "Request failed to reach the platform",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewServerError creates a retryable 5xx error.
func NewServerError(status int, details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeServer,
		Message:   fmt.Sprintf("Platform returned status %d", status),
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewParseError creates a non-retryable malformed-payload error.
func NewParseError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeParse,
		Message:   "Response did not match the expected schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// FromStatusCode maps a non-2xx HTTP status to the taxonomy. The body
// detail, when the platform sent one, is carried through verbatim.
func FromStatusCode(status int, detail string) *ClientError {
	switch {
	case status == http.StatusUnauthorized:
		return NewAuthenticationError(detail)
	case status == http.StatusForbidden:
		return NewAuthorizationError(detail)
	case status == http.StatusNotFound:
		return NewNotFoundError(detail)
	case status >= 500:
		return NewServerError(status, detail)
	default:
		return &ClientError{
			Code:      ErrCodeValidation,
			Message:   fmt.Sprintf("Platform rejected the request (status %d)", status),
			Details:   detail,
			Retryable: false,
			Timestamp: time.Now().UTC(),
		}
	}
}

// Normalize ensures any error is a *ClientError.
func Normalize(err error) *ClientError {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce
	}
	return &ClientError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether the operation that produced err may be
// safely retried by the caller.
func IsRetryable(err error) bool {
	return Normalize(err).Retryable
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return Normalize(err).Code == code
}
