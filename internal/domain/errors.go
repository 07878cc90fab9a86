package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrRoomNotFound        = fmt.Errorf("room %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
	ErrAccountNotFound     = fmt.Errorf("account %w", ErrNotFound)
	ErrGuestNotFound       = fmt.Errorf("guest %w", ErrNotFound)
)

var (
	ErrConflict          = errors.New("room is already reserved for the requested dates")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrLockTimeout       = errors.New("lock wait timeout")
	ErrDuplicateRequest  = errors.New("idempotency key already used")
)

var (
	ErrValidation = errors.New("validation error")
)

// FieldErrors maps a form field to a human readable message.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// ValidationError carries the field-level messages of a failed workflow step.
type ValidationError struct {
	Step   int
	Fields FieldErrors
}

func NewValidationError(step int, fields FieldErrors) *ValidationError {
	return &ValidationError{Step: step, Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (step %d): %s", ErrValidation, e.Step, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidTransitionError is returned when a status change is not in the lifecycle table
// or its precondition does not hold.
type InvalidTransitionError struct {
	From   ReservationStatus
	To     ReservationStatus
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
