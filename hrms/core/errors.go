package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Error is a business failure carrying the message shown to the caller.
// Kind is one of ErrValidation, ErrNotFound or ErrConflict.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Detail: fmt.Sprintf(format, args...)}
}

func conflictError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrConflict, Detail: fmt.Sprintf(format, args...)}
}

func employeeNotFound(id uint) *Error {
	return &Error{Kind: ErrNotFound, Detail: fmt.Sprintf("Employee with ID %d not found", id)}
}
