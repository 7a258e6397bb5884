// Package common defines shared sentinel errors used across lifekeeper
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoSession is returned by data operations that require a logged-in
	// user while the session is anonymous.
	ErrNoSession = errors.New("no active session")

	// ErrValidation wraps missing or malformed required fields. Wrapped
	// messages name the offending field.
	ErrValidation = errors.New("validation error")
)
