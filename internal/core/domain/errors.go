package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTokenInvalid indicates the session token failed verification.
	// Structural, signature, and expiry failures all collapse to this one
	// value so callers cannot learn which check failed.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidCredentials indicates a wrong email/password combination
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated indicates no usable principal where one is required
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates the principal lacks the required capability
	ErrForbidden = errors.New("forbidden")

	// ErrStoreUnavailable indicates a credential store failure. Transient;
	// callers may retry. Never swallowed into a success response.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotificationFailed indicates notification dispatch failed.
	// Non-fatal to the reset flow's response.
	ErrNotificationFailed = errors.New("notification failed")
)
