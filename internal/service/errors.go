// Package service provides business logic services for the printer portal.
package service

import "errors"

// Common service errors. Entity-level errors (not found, conflicts) live in
// the domain package; these cover request validation and infrastructure
// failures.
var (
	// ErrInvalidEmail indicates the email does not parse as an address.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword indicates the password is too short.
	ErrInvalidPassword = errors.New("invalid password: must be at least 8 characters")

	// ErrInvalidID indicates a malformed resource id in the request path.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidInkAmount indicates a non-positive ink fill amount.
	ErrInvalidInkAmount = errors.New("amount_liters must be greater than zero")

	// ErrEmptyUpdate indicates a partial update carrying no fields.
	ErrEmptyUpdate = errors.New("no update data provided")

	// ErrInternal wraps unexpected persistence-layer failures.
	ErrInternal = errors.New("internal server error")
)
