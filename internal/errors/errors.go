package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy for the profile server. Every error returned by a service
// wraps exactly one of these kinds so the HTTP layer can map it to a status.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	// Authentication errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	ErrNoToken            = fmt.Errorf("no token supplied: %w", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("token invalid or expired: %w", ErrUnauthenticated)

	// Token errors
	ErrTokenMalformed = fmt.Errorf("token malformed: %w", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("token signature mismatch: %w", ErrInvalidToken)
	ErrTokenExpired   = fmt.Errorf("token expired: %w", ErrInvalidToken)

	// Lookup errors
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProfileNotFound = fmt.Errorf("profile %w", ErrNotFound)
	ErrEntryNotFound   = fmt.Errorf("entry %w", ErrNotFound)

	ErrUserExists = fmt.Errorf("user already exists: %w", ErrConflict)
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// ValidationError carries field level detail for ErrValidationFailed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// StoreError wraps err as ErrStoreUnavailable while keeping the cause for logging.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New is errors.New, re-exported so callers need a single errors import.
func New(text string) error {
	return errors.New(text)
}
