package services

import (
	"errors"
)

var (
	// ErrWrongPassword is the typed, non-fatal failure for a
	// self-service password change with a bad current password.
	ErrWrongPassword = errors.New("wrong current password")

	// ErrCategoryInUse blocks category deletion while articles still
	// reference it.
	ErrCategoryInUse = errors.New("category still has articles")

	// ErrPasswordTooShort rejects passwords below the minimum length
	// on both the registration and change paths.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrMissingInput is returned when a required argument is absent.
	// Failing loudly here beats silently doing nothing.
	ErrMissingInput = errors.New("missing required input")

	// ErrForbidden is an authorization denial raised before any mutation.
	ErrForbidden = errors.New("operation not allowed")
)
