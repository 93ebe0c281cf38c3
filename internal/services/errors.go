package services

import (
	"errors"
	"fmt"

	"lostfound/internal/session"
)

var (
	ErrUnauthenticated       = errors.New("authentication required")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDuplicateIdentity     = errors.New("registration number or email already registered")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidAction         = errors.New("invalid action")
	ErrItemNotEligible       = errors.New("item not available for claim")
	ErrItemNotReturnable     = errors.New("item is not claimed")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrDependency            = errors.New("dependency failure")

	// ErrClaimAlreadyResolved is an ErrInvalidAction: resolving a terminal
	// claim is rejected as a bad request.
	ErrClaimAlreadyResolved = fmt.Errorf("%w: claim already resolved", ErrInvalidAction)

	ErrNoSession = session.ErrNoSession
)

// ValidationError reports a rejected input field. Message is user facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
