package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
)

var (
	// ErrConfiguration marks startup problems the process cannot run with.
	ErrConfiguration = errors.New("configuration error")
	ErrMissingSecret = fmt.Errorf("%w: JWT secret is not set", ErrConfiguration)

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotFound           = errors.New("not_found")

	ErrConflict        = errors.New("conflict")
	ErrEmailTaken      = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUsernameTaken   = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrProfileConflict = fmt.Errorf("%w: username or email in use", ErrConflict)
	ErrAuthorHasBooks  = fmt.Errorf("%w: author still has books", ErrConflict)
	ErrValidation      = errors.New("validation_error")
)

// FieldError is one failed input rule.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failed rule in the order they were
// checked. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Add records a failure for field. Only the first failure per field is
// kept.
func (e *ValidationError) Add(field, message string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Details maps each failing field to its message.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// Err returns e when any rule failed and nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// invalid is a one-field ValidationError.
func invalid(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// mapNotFound converts store.ErrNotFound, leaving other errors wrapped with
// op for the logs.
func mapNotFound(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
