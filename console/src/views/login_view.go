package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/narender/product-console/console/src/validation"
)

// LoginView is what the login screen shows. Username and Password are the
// already rendered inputs.
type LoginView struct {
	Username string
	Password string
	Errors   validation.LoginErrors
	Success  string
	Loading  bool
}

func (s Styles) RenderLogin(v LoginView) string {
	var b strings.Builder

	if v.Success != "" {
		b.WriteString(s.Success.Render(v.Success))
		b.WriteString("\n\n")
	}
	b.WriteString(s.Title.Render("Sign in to your account"))
	b.WriteString("\n")

	field := func(label, input, errMsg string) {
		b.WriteString(s.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(input)
		b.WriteString("\n")
		if errMsg != "" {
			b.WriteString(s.Error.Render(errMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	field("Username", v.Username, v.Errors.Username)
	field("Password", v.Password, v.Errors.Password)

	if v.Loading {
		b.WriteString(s.Muted.Render("[ Logging in... ]"))
	} else {
		b.WriteString(s.Label.Render("[ Login ]"))
	}
	b.WriteString("\n")

	return lipgloss.JoinVertical(lipgloss.Left, s.Panel.Render(b.String()),
		s.Muted.Render("tab: next field  enter: submit  ctrl+c: quit"))
}
