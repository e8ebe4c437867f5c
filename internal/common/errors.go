// Package common defines sentinel errors shared across the repository,
// service and console layers. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned when username/password is wrong.
	// Unknown username and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
)
