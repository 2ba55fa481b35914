package apierrors

import (
	"fmt"
	"net/http"
)

// AppError defines a standard application error.
type AppError struct {
	Code     string        // Application-specific error code
	Category ErrorCategory // business or application
	Message  string        // User-facing message
	Err      error         // Original underlying error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an application category AppError.
func NewAppError(code, message string, cause error) *AppError {
	return NewApplicationError(code, message, cause)
}

func NewApplicationError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Category: CategoryApplication, Message: message, Err: cause}
}

func NewBusinessError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Category: CategoryBusiness, Message: message, Err: cause}
}

// HTTPStatus maps the error code to the status the backend responds with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeProductNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidProductData, ErrCodeInvalidFilter, ErrCodeRequestValidation, ErrCodeMalformedData:
		return http.StatusBadRequest
	case ErrCodeInvalidCredentials, ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeServiceUnavailable, ErrCodeNetworkError:
		return http.StatusServiceUnavailable
	case ErrCodeRequestTimeout:
		return http.StatusRequestTimeout
	}
	if e.Category == CategoryBusiness {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
