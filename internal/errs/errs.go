// Package errs contains sentinel errors shared across the store and handler layers.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a failed login: unknown email or wrong password.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingReference indicates a create referencing a nonexistent parent record.
	ErrMissingReference = errors.New("missing reference")
)
