// Package errs defines the error kinds surfaced by services and mapped to
// transport status codes by the HTTP layer.
package errs

import "fmt"

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %v no encontrado", e.Entity, e.ID)
}

// ConflictError reports a violated uniqueness or reference constraint.
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string { return e.Msg }

func (e *ConflictError) Unwrap() error { return e.Err }

// UnauthorizedError reports rejected credentials.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string { return e.Msg }

// StoreError wraps any persistence failure that has no more specific kind.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Conflict(msg string, err error) error {
	return &ConflictError{Msg: msg, Err: err}
}

func Unauthorized(msg string) error {
	return &UnauthorizedError{Msg: msg}
}

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
