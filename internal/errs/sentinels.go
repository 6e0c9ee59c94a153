// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrConstraint indicates a referential-integrity failure (e.g. owning user missing).
	ErrConstraint = errors.New("constraint violation")

	// ErrUnknownEnum indicates a stored enum name that matches no known value.
	ErrUnknownEnum = errors.New("unknown enum value")

	// ErrUnauthorized indicates a failed or missing gate authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates a temporary unlock lockout after repeated failures.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation indicates a domain object that failed save-time validation.
	ErrValidation = errors.New("validation failed")
)
