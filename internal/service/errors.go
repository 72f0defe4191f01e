package service

import (
	"errors"
	"fmt"

	"github.com/newsroom-platform-api/internal/validation"
)

// Sentinel errors forming the service error taxonomy. Handlers map these
// to HTTP statuses; nothing below the api package knows about HTTP.
var (
	// ErrNotFound means the referenced content, comment or user is absent.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means an authorization predicate failed. Never a
	// silent no-op: callers always observe the denial.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict means a unique constraint was genuinely violated.
	// Duplicate toggles are folded into toggle-off and never surface this.
	ErrConflict = errors.New("conflict")
	// ErrValidation is the sentinel matched by ValidationError values.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries field-level detail for re-submission.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(e.Fields))
}

// Is lets errors.Is(err, ErrValidation) match ValidationError values.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// newValidationError wraps field errors, or returns nil when there are none.
func newValidationError(fields []validation.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
