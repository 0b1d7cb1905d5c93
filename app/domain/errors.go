package domain

import (
	"errors"
	"fmt"
)

// RequiredFieldError reports a mandatory field that is missing or blank.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("field '%s' is required", e.Field)
}

// InvalidFormatError reports a field whose value does not match its expected shape.
type InvalidFormatError struct {
	Field    string
	Expected string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("field '%s' must be a %s", e.Field, e.Expected)
}

// InvalidRangeError reports a length or numeric constraint violation.
type InvalidRangeError struct {
	Field  string
	Detail string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("field '%s' %s", e.Field, e.Detail)
}

// ValidationError is the generic validation failure for anything the more
// specific kinds do not cover.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateError reports a uniqueness violation on a field.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", e.Entity, e.Field, e.Value)
}

// NotFoundError reports a lookup that matched nothing.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Entity, e.Key)
}

// DatabaseError wraps a persistence-layer failure with the attempted operation.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("database error during %s", e.Op)
	}
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// IsDomainError tells whether err belongs to the domain taxonomy. Use cases
// re-throw domain errors unchanged and wrap everything else as DatabaseError.
func IsDomainError(err error) bool {
	var required *RequiredFieldError
	var format *InvalidFormatError
	var rng *InvalidRangeError
	var validation *ValidationError
	var duplicate *DuplicateError
	var notFound *NotFoundError
	var database *DatabaseError
	return errors.As(err, &required) ||
		errors.As(err, &format) ||
		errors.As(err, &rng) ||
		errors.As(err, &validation) ||
		errors.As(err, &duplicate) ||
		errors.As(err, &notFound) ||
		errors.As(err, &database)
}
