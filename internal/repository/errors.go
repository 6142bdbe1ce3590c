// Package repository defines data access interfaces for the printer portal.
package repository

import "errors"

// Common repository errors. Implementations translate driver-specific
// failures into these so the service layer never sees driver types.
var (
	// ErrNotFound indicates the document does not exist within the
	// caller's ownership scope.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a uniqueness constraint was violated.
	ErrDuplicate = errors.New("duplicate")

	// ErrInvalidID indicates the supplied id is not a well-formed
	// document reference.
	ErrInvalidID = errors.New("invalid id")
)
