package config

import (
	"fmt"
	"net/url"
	"slices"

	"golang.org/x/exp/constraints"
)

// Validator collects configuration problems so they can be reported together
type Validator struct {
	errors []error
}

func NewValidator() *Validator {
	return &Validator{
		errors: []error{},
	}
}

// AddError adds an error for a field
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, fmt.Errorf("%s: %s", field, message))
}

// RequireNonEmpty validates that a string field is not empty
func (v *Validator) RequireNonEmpty(field, value string) {
	if value == "" {
		v.AddError(field, "cannot be empty")
	}
}

// RequireOneOf validates that a string value is one of the allowed values
func (v *Validator) RequireOneOf(field, value string, allowed []string) {
	if !slices.Contains(allowed, value) {
		v.AddError(field, fmt.Sprintf("must be one of: %v", allowed))
	}
}

// RequireHTTPURL validates that value is an absolute http or https URL.
// Empty values are left to RequireNonEmpty.
func (v *Validator) RequireHTTPURL(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.AddError(field, "must be an absolute http(s) URL")
	}
}

// RequireInRange validates that an ordered value is within an inclusive range.
func RequireInRange[T constraints.Ordered](v *Validator, field string, value, min, max T) {
	if value < min || value > max {
		v.AddError(field, fmt.Sprintf("must be between %v and %v", min, max))
	}
}

// Errors returns all validation errors
func (v *Validator) Errors() []error {
	return v.errors
}
