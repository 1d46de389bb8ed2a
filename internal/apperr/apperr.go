// Package apperr defines the error taxonomy shared by the engine packages.
// Handlers map these onto HTTP status codes; the engines themselves never
// retry and never partially apply an update.
package apperr

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnauthorized is returned when a non-administrator invokes an
	// administrator-only operation, or an actor reads a record it does not own.
	ErrUnauthorized = errors.New("administrator access required")
	// ErrNotFound is returned when an operation targets a non-existent id.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable is returned when the underlying store is unreachable.
	ErrUnavailable = errors.New("store unavailable")
	// ErrTooManyComplaints is returned when a student exceeds the
	// submission throttle.
	ErrTooManyComplaints = errors.New("complaint submission limit reached")
)

// FieldError points at a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports one or more missing or malformed request fields.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) error {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// FromValidator converts go-playground/validator output into a
// ValidationError. Non-validator errors pass through unchanged.
func FromValidator(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: "failed " + fe.Tag() + " validation",
		})
	}
	return NewValidationError(fields...)
}
