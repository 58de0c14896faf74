package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code identifies the kind of failure in fault payloads.
type Code string

const (
	CodeInvalidRequest       Code = "INVALID_REQUEST"
	CodeEntityNotFound       Code = "ENTITY_NOT_FOUND"
	CodeOperationFailed      Code = "OPERATION_FAILED"
	CodeAuthenticationFailed Code = "AUTHENTICATION_FAILED"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoActiveUser         = fmt.Errorf("%w: no active user", ErrAuthenticationFailed)
	ErrNotFound             = errors.New("entity not found")
	ErrDuplicate            = errors.New("duplicate value violates a uniqueness constraint")
	ErrInternal             = errors.New("internal server error")
)

// ValidationError aggregates every violated business rule of one operation.
// Rules append their message in evaluation order; the operation fails only
// after all applicable rules ran.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, "; "))
}

func (e *ValidationError) Add(msg string) {
	e.Fields = append(e.Fields, msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the aggregate as an error value, or nil when no rule failed.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

// CodeOf maps an error to its fault code.
func CodeOf(err error) Code {
	if _, ok := AsValidation(err); ok {
		return CodeInvalidRequest
	}
	switch {
	case errors.Is(err, ErrAuthenticationFailed):
		return CodeAuthenticationFailed
	case errors.Is(err, ErrNotFound):
		return CodeEntityNotFound
	default:
		return CodeOperationFailed
	}
}

// HTTPStatus maps an error to the status of its fault response.
func HTTPStatus(err error) int {
	if _, ok := AsValidation(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
