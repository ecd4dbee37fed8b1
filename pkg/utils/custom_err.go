package utils

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAccountNotFound   = fmt.Errorf("account %w", ErrNotFound)
	ErrComplaintNotFound = fmt.Errorf("complaint %w", ErrNotFound)

	ErrValidation         = errors.New("validation failed")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrNotSubscribed      = errors.New("not subscribed to meal")
	ErrMealsLocked        = errors.New("meal subscriptions are locked")
	ErrAmountTooLow       = errors.New("amount below minimum top-up")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")

	ErrComplaintResolved = &ValidationError{Field: "status", Reason: "complaint is already resolved"}
)

// ValidationError reports a missing or malformed input field.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
