package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 6
	passwordMaxLen = 100
)

const (
	MsgUsernameRequired = "Username is required"
	MsgUsernameLength   = "Username must be between 3 and 50 characters"
	MsgUsernameCharset  = "Username may only contain letters, numbers, '-', '.', and '_'"
	MsgPasswordRequired = "Password is required"
	MsgPasswordLength   = "Password must be between 6 and 100 characters"
	MsgPasswordStrength = "Password must contain at least one letter and one number"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// LoginErrors holds one message per login field; empty means valid.
type LoginErrors struct {
	Username string
	Password string
}

func (e LoginErrors) Valid() bool {
	return e.Username == "" && e.Password == ""
}

// ValidateUsername returns the first failing rule's message, or "".
func ValidateUsername(username string) string {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return MsgUsernameRequired
	}
	if n := utf8.RuneCountInString(trimmed); n < usernameMinLen || n > usernameMaxLen {
		return MsgUsernameLength
	}
	if !usernamePattern.MatchString(trimmed) {
		return MsgUsernameCharset
	}
	return ""
}

// ValidatePassword returns the first failing rule's message, or "".
func ValidatePassword(password string) string {
	trimmed := strings.TrimSpace(password)
	if trimmed == "" {
		return MsgPasswordRequired
	}
	if n := utf8.RuneCountInString(trimmed); n < passwordMinLen || n > passwordMaxLen {
		return MsgPasswordLength
	}
	if !hasLetter.MatchString(trimmed) || !hasDigit.MatchString(trimmed) {
		return MsgPasswordStrength
	}
	return ""
}

// ValidateLoginForm runs both validators; neither short-circuits the other.
func ValidateLoginForm(username, password string) LoginErrors {
	return LoginErrors{
		Username: ValidateUsername(username),
		Password: ValidatePassword(password),
	}
}
