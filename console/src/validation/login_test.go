package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", MsgUsernameRequired},
		{"whitespace only", "   ", MsgUsernameRequired},
		{"too short", "ab", MsgUsernameLength},
		{"too long", strings.Repeat("a", 51), MsgUsernameLength},
		{"bad charset", "admin@1", MsgUsernameCharset},
		{"space inside", "ad min", MsgUsernameCharset},
		{"valid", "admin", ""},
		{"valid with symbols", "john.doe_1-x", ""},
		{"trimmed before checks", "  admin  ", ""},
		{"exactly 50", strings.Repeat("a", 50), ""},
		{"length counts runes", "ééé", MsgUsernameCharset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUsername(tt.input))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", MsgPasswordRequired},
		{"too short", "12345", MsgPasswordLength},
		{"too long", strings.Repeat("a1", 51), MsgPasswordLength},
		{"letters only", "abcdef", MsgPasswordStrength},
		{"digits only", "123456", MsgPasswordStrength},
		{"valid", "abc123", ""},
		{"non ascii letter does not count", "éééé12", MsgPasswordStrength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.input))
		})
	}
}

func TestValidateLoginFormRunsBothValidators(t *testing.T) {
	errs := ValidateLoginForm("", "")
	assert.Equal(t, MsgUsernameRequired, errs.Username)
	assert.Equal(t, MsgPasswordRequired, errs.Password)
	assert.False(t, errs.Valid())

	errs = ValidateLoginForm("admin", "abc")
	assert.Empty(t, errs.Username)
	assert.Equal(t, MsgPasswordLength, errs.Password)

	assert.True(t, ValidateLoginForm("admin", "admin123").Valid())
}
