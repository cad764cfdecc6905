package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrReadOnly   = errors.New("store is read-only")
)

// UserError is a validation message reported by a remote mutation.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func (e UserError) String() string {
	if len(e.Field) == 0 {
		return e.Message
	}
	return strings.Join(e.Field, ".") + ": " + e.Message
}

// ValidationError carries the user errors of a rejected mutation.
type ValidationError struct {
	Operation  string
	UserErrors []UserError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.UserErrors))
	for _, u := range e.UserErrors {
		msgs = append(msgs, u.String())
	}
	return e.Operation + ": " + ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// CheckUserErrors turns a non-empty list into a *ValidationError.
func CheckUserErrors(operation string, errs []UserError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Operation: operation, UserErrors: errs}
}
