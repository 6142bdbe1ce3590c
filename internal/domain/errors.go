// Package domain contains the core business entities for the printer portal.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors - these represent business rule violations.
// They are distinct from infrastructure errors (database, network, etc.).

var (
	// ===========================================
	// Validation
	// ===========================================

	// ErrValidation indicates a request payload violated a field-level rule.
	ErrValidation = errors.New("validation failed")

	// ===========================================
	// User Errors
	// ===========================================

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered indicates a user with the same email exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials indicates authentication failed. The same error
	// is returned whether the email is unknown or the password is wrong,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ===========================================
	// Printer Errors
	// ===========================================

	// ErrPrinterNotFound indicates the printer is absent or owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrPrinterNotFound = errors.New("printer not found")

	// ErrDuplicateSerialNumber indicates a printer with the same serial
	// number already exists anywhere in the system.
	ErrDuplicateSerialNumber = errors.New("printer with this serial number already exists")

	// ===========================================
	// Ink Fill Errors
	// ===========================================

	// ErrInvalidInkColor indicates the color does not match any of the
	// printer's configured ink channels.
	ErrInvalidInkColor = errors.New("invalid ink color")

	// ===========================================
	// Job Errors
	// ===========================================

	// ErrJobNotFound indicates the job is absent or owned by another user.
	ErrJobNotFound = errors.New("job not found")

	// ===========================================
	// Inventory Errors
	// ===========================================

	// ErrItemNotFound indicates the inventory item is absent or owned by
	// another user.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrDuplicateInkName indicates an inventory item with the same name
	// already exists for this owner.
	ErrDuplicateInkName = errors.New("inventory item with this name already exists")

	// ===========================================
	// Settings Errors
	// ===========================================

	// ErrSettingsNotFound indicates settings were absent immediately after
	// an upsert. This is a fatal inconsistency, not a normal error path.
	ErrSettingsNotFound = errors.New("settings not found after update")
)

// DomainError wraps a domain error with additional context.
type DomainError struct {
	// Err is the underlying domain error.
	Err error

	// Message provides additional context shown to the caller.
	Message string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError with a caller-facing message.
func NewDomainError(err error, format string, args ...any) *DomainError {
	return &DomainError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}
