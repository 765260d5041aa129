// Package common defines sentinel errors shared by the repositories,
// services and HTTP layer of the tracker. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
	ErrInvalidEmail = errors.New("invalid email format")

	// Refinements of ErrValidation; errors.Is matches both.
	ErrTooLong         = fmt.Errorf("%w: value too long", ErrValidation)
	ErrPasswordTooLong = fmt.Errorf("%w: password too long", ErrValidation)

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("secret key is empty")
)
