package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected storage or infrastructure failure.
var ErrInternal = errors.New("internal error")

// Ledger rule errors.
var (
	// ErrInvalidAccountClassification is returned when an account exists but has the wrong type for its role.
	ErrInvalidAccountClassification = errors.New("invalid account classification")
	// ErrMissingCanonicalAccount is returned when the chart of accounts lacks an account the rules require.
	ErrMissingCanonicalAccount = errors.New("canonical account missing from chart of accounts")
	// ErrExhaustedRetries is returned when no free document number was found within the retry budget.
	ErrExhaustedRetries = errors.New("document number allocation exhausted its retry budget")

	ErrUnknownAccount = fmt.Errorf("%w: unknown account", ErrValidation)
	ErrInvalidAmount  = fmt.Errorf("%w: amount must be positive with at most two decimal places", ErrValidation)
	ErrSameAccount    = fmt.Errorf("%w: debit and credit accounts must differ", ErrValidation)
)

// ValidationError carries per-field messages so callers can re-render the originating form.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError with a single field message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a message for field. Later messages for the same field win.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns e as an error when it carries messages, nil otherwise.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
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
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FieldError attaches the offending input field to a rule error.
type FieldError struct {
	Field string
	Err   error
}

// WithField wraps err so handlers can report which field caused it.
func WithField(field string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// Fields collects the per-field messages carried anywhere in err's chain.
func Fields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.HasErrors() {
		out := make(map[string]string, len(ve.Fields))
		for k, v := range ve.Fields {
			out[k] = v
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return map[string]string{fe.Field: fe.Err.Error()}
	}
	return nil
}

// AppError wraps a lower-level failure with an HTTP-ish status code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	if e.Err == nil {
		return ErrInternal
	}
	return e.Err
}
