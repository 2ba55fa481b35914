package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ServerError is a non-2xx response from the backend. Message is the body's
// message (or error) field verbatim, or a generic text when the body had none.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

// NewServerError builds a ServerError, falling back to the status text when
// the server supplied no message.
func NewServerError(status int, message string) *ServerError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", status)
		if text := http.StatusText(status); text != "" {
			message = fmt.Sprintf("Request failed with status %d (%s)", status, text)
		}
	}
	return &ServerError{StatusCode: status, Message: message}
}

// IsStatus reports whether err is a ServerError with the given status.
func IsStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.StatusCode == status
}

// UserMessage picks the text shown to the user for err. Server and AppError
// messages are shown verbatim; errors without one fall back.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	var ae *AppError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
