package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("saving: %w", NewAppError(ErrCodeDatabaseAccess, "could not save", cause))

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrCodeDatabaseAccess, appErr.Code)
	assert.Equal(t, CategoryApplication, appErr.Category)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, appErr.Error(), "Cause=disk full")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewBusinessError(ErrCodeProductNotFound, "missing", nil), http.StatusNotFound},
		{NewBusinessError(ErrCodeInvalidFilter, "min > max", nil), http.StatusBadRequest},
		{NewBusinessError(ErrCodeInvalidCredentials, "nope", nil), http.StatusUnauthorized},
		{NewApplicationError(ErrCodeRequestValidation, "bad", nil), http.StatusBadRequest},
		{NewApplicationError(ErrCodeDatabaseAccess, "io", nil), http.StatusInternalServerError},
		{NewBusinessError("SOMETHING_ELSE", "x", nil), http.StatusBadRequest},
		{NewApplicationError("SOMETHING_ELSE", "x", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), tt.err.Code)
	}
}

func TestNewServerErrorFallbackMessage(t *testing.T) {
	assert.Equal(t, "Invalid username or password", NewServerError(401, "Invalid username or password").Message)
	assert.Equal(t, "Request failed with status 500 (Internal Server Error)", NewServerError(500, "  ").Message)
	assert.Equal(t, "Request failed with status 599", NewServerError(599, "").Message)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"server message verbatim", NewServerError(401, "Invalid username or password"), "Invalid username or password"},
		{"wrapped server error", fmt.Errorf("login: %w", NewServerError(404, "Not here")), "Not here"},
		{"network error message", NewAppError(ErrCodeNetworkError, "Backend is unreachable", nil), "Backend is unreachable"},
		{"wrapped application error", fmt.Errorf("list: %w", NewApplicationError(ErrCodeMalformedData, "Backend sent an unreadable page", nil)), "Backend sent an unreadable page"},
		{"app error without message falls back", NewAppError(ErrCodeNetworkError, "", nil), "Login failed"},
		{"business error message", NewBusinessError(ErrCodeProductNotFound, "Product not found", nil), "Product not found"},
		{"plain error falls back", errors.New("boom"), "Login failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "Login failed"))
		})
	}
}

func TestIsStatus(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewServerError(http.StatusNotFound, ""))
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusBadRequest))
	assert.False(t, IsStatus(errors.New("x"), http.StatusNotFound))
}
