package common

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ValidationError indicates that a request was missing a required field or contained a malformed value.
type ValidationError struct {
	message string
	Fields  []string
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	return e.message
}

// NewValidationError returns a new error indicating that a request could not be validated.
func NewValidationError(formatString string, a ...interface{}) ValidationError {
	return ValidationError{message: fmt.Sprintf(formatString, a...)}
}

// NewMissingFieldsError returns a validation error listing the required fields that were missing or blank.
func NewMissingFieldsError(fields ...string) ValidationError {
	return ValidationError{
		message: fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

// NotFoundError indicates that an identifier did not resolve to any record.
type NotFoundError struct {
	message string
}

// Error returns the error message for a NotFoundError.
func (e NotFoundError) Error() string {
	return e.message
}

// NewNotFoundError returns a new error indicating that a record could not be found.
func NewNotFoundError(formatString string, a ...interface{}) NotFoundError {
	return NotFoundError{message: fmt.Sprintf(formatString, a...)}
}

// StoreError indicates that a database operation failed.
type StoreError struct {
	cause error
}

// Error returns the error message for a StoreError.
func (e StoreError) Error() string {
	return e.cause.Error()
}

// Unwrap returns the underlying cause of a StoreError.
func (e StoreError) Unwrap() error {
	return e.cause
}

// WrapStoreError marks an error returned by the database as a StoreError, annotating it with a message.
func WrapStoreError(err error, message string) error {
	if err == nil {
		return nil
	}
	return StoreError{cause: errors.Wrap(err, message)}
}
