package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatusCode(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		detail        string
		wantCode      ErrorCode
		wantRetryable bool
	}{
		{
			name:     "401 maps to authentication",
			status:   http.StatusUnauthorized,
			detail:   "Could not validate credentials",
			wantCode: ErrCodeAuthentication,
		},
		{
			name:     "403 maps to authorization",
			status:   http.StatusForbidden,
			detail:   "Not enough permissions",
			wantCode: ErrCodeAuthorization,
		},
		{
			name:     "404 maps to not found",
			status:   http.StatusNotFound,
			detail:   "Interview not found",
			wantCode: ErrCodeNotFound,
		},
		{
			name:          "500 is a retryable server error",
			status:        http.StatusInternalServerError,
			detail:        "boom",
			wantCode:      ErrCodeServer,
			wantRetryable: true,
		},
		{
			name:          "503 is a retryable server error",
			status:        http.StatusServiceUnavailable,
			detail:        "maintenance",
			wantCode:      ErrCodeServer,
			wantRetryable: true,
		},
		{
			name:     "400 falls back to validation",
			status:   http.StatusBadRequest,
			detail:   "Already applied for this job",
			wantCode: ErrCodeValidation,
		},
		{
			name:     "409 falls back to validation",
			status:   http.StatusConflict,
			detail:   "conflict",
			wantCode: ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatusCode(tt.status, tt.detail)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantRetryable, err.Retryable)
			assert.Equal(t, tt.detail, err.Details)
			assert.False(t, err.Timestamp.IsZero())
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("client error passes through", func(t *testing.T) {
		original := NewParseError("bad payload")
		got := Normalize(original)
		assert.Same(t, original, got)
	})

	t.Run("wrapped client error is unwrapped", func(t *testing.T) {
		original := NewNetworkError(errors.New("connection refused"))
		wrapped := fmt.Errorf("loading interview: %w", original)
		got := Normalize(wrapped)
		assert.Same(t, original, got)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := Normalize(errors.New("something odd"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, "something odd", got.Details)
		assert.False(t, got.Retryable)
	})
}

func TestRetryability(t *testing.T) {
	assert.True(t, IsRetryable(NewNetworkError(errors.New("timeout"))))
	assert.True(t, IsRetryable(NewServerError(502, "bad gateway")))

	assert.False(t, IsRetryable(NewValidationError("empty answer")))
	assert.False(t, IsRetryable(NewAuthenticationError("bad password")))
	assert.False(t, IsRetryable(NewAuthorizationError("wrong role")))
	assert.False(t, IsRetryable(NewNotFoundError("interview")))
	assert.False(t, IsRetryable(NewParseError("schema mismatch")))
}

func TestHasCode(t *testing.T) {
	err := NewValidationError("empty answer")
	assert.True(t, HasCode(err, ErrCodeValidation))
	assert.False(t, HasCode(err, ErrCodeNetwork))
	assert.True(t, HasCode(fmt.Errorf("wrapped: %w", err), ErrCodeValidation))
}

func TestClientError_Error(t *testing.T) {
	err := NewServerError(500, "boom")
	assert.Equal(t, "ClientError[SERVER_ERROR]: Platform returned status 500", err.Error())
}
