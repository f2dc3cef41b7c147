// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when attempting to register an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// the same for unknown emails and wrong passwords so callers cannot
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
