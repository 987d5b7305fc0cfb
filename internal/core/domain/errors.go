package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidSubscription = errors.New("invalid subscription type")
var ErrInvalidDataCategory = errors.New("invalid data category")

// ForbiddenError carries the reason string produced by a rejected
// permission predicate.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// Forbid wraps a predicate rejection reason as a ForbiddenError.
func Forbid(reason string) error {
	return &ForbiddenError{Reason: reason}
}

// ValidationError reports a malformed registration or update field.
// It is recoverable and carries field-level detail for the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var ErrPasswordMismatch = NewValidationError("password", "passwords do not match")
var ErrWeakPassword = NewValidationError("password", "password must be at least 8 characters")
