// Package controllers holds the state machines behind the login screen and
// the product dashboard. Controllers are owned by a single goroutine and are
// not safe for concurrent use.
package controllers

import (
	"errors"
	"time"
)

var (
	// ErrInvalidForm is returned when local validation stopped a submit.
	ErrInvalidForm = errors.New("form has validation errors")
	// ErrSubmitInProgress is returned when a login is already in flight.
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// Scheduler runs fn once after d.
type Scheduler func(d time.Duration, fn func())

// AfterFunc schedules on the runtime timer.
func AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
