package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"

	"taskmanager/internal/repository"
)

var (
	// ErrNotFound is returned when the addressed record does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated is returned when credentials are missing or wrong
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the caller may not act on the record
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when a delete is blocked by tasks that still reference the record
	ErrConflict = errors.New("record is referenced by tasks")

	// ErrDuplicate is wrapped by violations of a uniqueness constraint
	ErrDuplicate = errors.New("is already taken")
)

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError lists every constraint a request violated.
type ValidationError struct {
	Violations *multierror.Error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details(), "; ")
}

// Details returns one "field: message" line per violation.
func (e *ValidationError) Details() []string {
	if e.Violations == nil {
		return nil
	}
	details := make([]string, 0, len(e.Violations.Errors))
	for _, err := range e.Violations.Errors {
		details = append(details, err.Error())
	}
	return details
}

func (e *ValidationError) Unwrap() error {
	return e.Violations
}

type violations struct {
	result *multierror.Error
}

func (v *violations) add(field, message string) {
	v.result = multierror.Append(v.result, &FieldError{Field: field, Message: message})
}

func (v *violations) err() error {
	if v.result == nil {
		return nil
	}
	return &ValidationError{Violations: v.result}
}

func duplicateError(field string) error {
	return &ValidationError{
		Violations: multierror.Append(nil, &FieldError{Field: field, Message: ErrDuplicate.Error(), Err: ErrDuplicate}),
	}
}

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// translate maps persistence errors onto the service taxonomy. uniqueField
// names the field reported when a unique constraint rejects the write.
func translate(err error, uniqueField string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrTaskStatusNotFound),
		errors.Is(err, repository.ErrLabelNotFound),
		errors.Is(err, repository.ErrTaskNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicateError(uniqueField)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	}
	return err
}
