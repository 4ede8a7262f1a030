package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrRequestNotFound = errors.New("request not found")

	ErrBookUnavailable     = errors.New("book is not available")
	ErrInsufficientCredits = errors.New("not enough credits")
	ErrAlreadyRequested    = errors.New("request already exists")
	ErrSelfRequest         = errors.New("cannot request your own book")
	ErrInvalidTransition   = errors.New("invalid request status transition")
	ErrRequestNotPending   = errors.New("request is not pending")

	ErrDuplicateUser = errors.New("username or email already taken")
	ErrInvalidOTP    = errors.New("invalid or expired verification code")
	ErrUnauthorized  = errors.New("unauthorized")
)

// ValidationError flags malformed or out-of-range input, e.g. a credit value
// outside 1..5.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
