package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes one violated input field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e FieldError) String() string {
	if e.Msg == "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ValidationError aggregates every violated field so the form layer can
// redisplay all of them at once, not just the first.
type ValidationError struct {
	Fields []FieldError
	Err    error
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "; ")
}

func (e ValidationError) Unwrap() error { return e.Err }

// HasField reports whether the error mentions the given field.
func (e ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, msg string) ValidationError {
	return ValidationError{Fields: []FieldError{{Field: field, Msg: msg}}}
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ConflictError covers the duplicate-name and in-use delete cases.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnsupportedRecurrenceKindError signals a recurrence keyword outside the
// recognized set; callers must not fall back to a default.
type UnsupportedRecurrenceKindError struct {
	Kind string
}

func (e UnsupportedRecurrenceKindError) Error() string {
	return fmt.Sprintf("unsupported recurrence kind %q", e.Kind)
}

// InternalError wraps backing-store failures surfaced verbatim to the caller.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnsupportedRecurrenceKind(err error) bool {
	var target UnsupportedRecurrenceKindError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
