// Package apperr defines the sentinel errors shared across the application.
//
// All of them represent recoverable user-input failures; nothing in the core
// ever throws across a component boundary.
package apperr

import "errors"

var (
	// ErrAccessDenied is returned when the admin credential check fails.
	ErrAccessDenied = errors.New("access denied: invalid credentials")

	// ErrMissingCredentials is returned when a user login or signup is
	// submitted without a username or password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrEmailRequired is returned when a signup is submitted without an
	// email address.
	ErrEmailRequired = errors.New("email is required for registration")
)
