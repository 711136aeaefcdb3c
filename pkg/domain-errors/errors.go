// Package domainerrors provides coded errors shared across domain, service,
// and transport layers. Handlers translate codes to HTTP statuses via
// ToHTTPStatus so services never import net/http.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error for transport mapping and branching.
type Code string

const (
	// CodeValidation marks request bodies that fail schema constraints.
	// Carries field-path-qualified details, one per violated field.
	CodeValidation Code = "validation_error"
	// CodeInvalidInput marks malformed identifiers and other inputs rejected
	// at a trust boundary before any store access.
	CodeInvalidInput Code = "invalid_input"
	CodeBadRequest   Code = "bad_request"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	// CodeUnavailable marks operations attempted while the document store is
	// unreachable or was never configured.
	CodeUnavailable Code = "store_unavailable"
	CodeInternal    Code = "internal_error"
)

// DomainError is the concrete error carried between layers.
type DomainError struct {
	Code    Code
	Message string
	// Fields holds field-path-qualified validation messages, e.g.
	// "primary_contact.email: must be a valid email address". Empty unless
	// Code is CodeValidation.
	Fields []string
	cause  error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying error with a domain code while preserving the
// cause for errors.Is/As chains.
func Wrap(err error, code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, cause: err}
}

// NewValidation creates a validation error enumerating every violated field.
func NewValidation(fields []string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: "request body failed validation",
		Fields:  fields,
	}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode at handler call sites.
func Is(err error, code Code) bool { return HasCode(err, code) }

// FieldsOf returns the validation details of err, if any.
func FieldsOf(err error) []string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// ToHTTPStatus maps a code to its HTTP status. Unknown codes map to 500 so a
// forgotten mapping fails loudly in logs rather than leaking a 200.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeInvalidInput, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
