// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrUnknownEra     = errors.New("unknown era")
	ErrInvalidCatalog = errors.New("invalid catalog")

	// Classification errors. ErrNetwork covers transport failures and
	// timeouts; ErrMalformedResponse covers responses that violate the
	// classifier contract, including era labels outside the fixed set.
	ErrNetwork           = errors.New("classifier unreachable")
	ErrMalformedResponse = errors.New("malformed classifier response")

	// Session errors.
	ErrUploadInFlight = errors.New("upload already in flight")
	ErrSessionClosed  = errors.New("session closed")
	ErrNotPurchasable = errors.New("item is not purchasable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRecoverable reports whether an error is a recoverable upload failure
// the user may simply retry, as opposed to a programming or catalog
// integrity error.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.Is(err, ErrUploadInFlight)
}
