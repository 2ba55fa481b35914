package models

import "strings"

// Credentials are built on submit and never stored.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Trimmed returns the credentials with surrounding whitespace removed.
func (c Credentials) Trimmed() Credentials {
	return Credentials{
		Username: strings.TrimSpace(c.Username),
		Password: strings.TrimSpace(c.Password),
	}
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MutationResult is what create and update return: the stored product plus
// the server's message, if any.
type MutationResult struct {
	Product Product
	Message string
}
