package shared

import (
	"errors"
	"fmt"
)

// Sentinel errors classify domain failures for transport mapping.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state transition")
	ErrValidation   = errors.New("validation failed")
)

// DomainError carries a sentinel kind plus a human-readable message.
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{Err: ErrNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewConflictError reports a concurrent modification or duplicate.
func NewConflictError(msg string) *DomainError {
	return &DomainError{Err: ErrConflict, Message: msg}
}

// NewInvalidStateError reports a forbidden state transition.
func NewInvalidStateError(from, to string) *DomainError {
	return &DomainError{Err: ErrInvalidState, Message: fmt.Sprintf("cannot transition from %s to %s", from, to)}
}

// NewValidationError reports malformed input.
func NewValidationError(msg string) *DomainError {
	return &DomainError{Err: ErrValidation, Message: msg}
}

// IsNotFound reports whether err is (or wraps) a not-found domain error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
