package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/yamdb-api/repositories"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("authentication credentials were not provided")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrBadCredentials     = errors.New("invalid confirmation code")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("validation failed")
	ErrNotificationFailed = errors.New("failed to deliver notification")
)

// ValidationError names every offending field of a request
type ValidationError struct {
	Fields map[string]string
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
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a ValidationError for a single field
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// FieldError is a non-validation failure attributed to one request field
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

// validate runs a request's rules and converts ozzo errors into a ValidationError
func validate(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		if fieldErr != nil {
			fields[field] = fieldErr.Error()
		}
	}
	return &ValidationError{Fields: fields}
}

// notFound maps gorm's missing-record error onto ErrNotFound
func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return err
}

// uniqueViolation maps a unique constraint failure onto a field error
func uniqueViolation(err error, field, message string) error {
	if repositories.IsUniqueViolation(err) {
		return NewFieldError(field, message)
	}
	return err
}
