package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrCast         = errors.New("cast error")
	ErrInternal     = errors.New("internal server error")
)

// AppError carries the message shown to clients in Message and everything
// useful for the logs in Details and Err.
type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

// Unwrap exposes both the category sentinel and the cause.
func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.BaseError}
	}
	return []error{e.BaseError, e.Err}
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

// NewInvalidInput reports err's text verbatim to the client.
func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, err.Error(), details, err)
}

func NewCast(resource, value string, err error) *AppError {
	msg := fmt.Sprintf("Cast to ObjectId failed for value %q (type string) at path \"_id\" for model %q", value, resource)
	return NewAppError(ErrCast, msg, "malformed identifier", err)
}

// NewInternal reports err's text verbatim to the client.
func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, err.Error(), details, err)
}

// Message returns the text a client should see for err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// ToHTTPStatus maps err to a status code. Errors that are neither not-found
// nor invalid input get fallback, which callers choose per operation.
func ToHTTPStatus(err error, fallback int) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if fallback == 0 {
		return http.StatusInternalServerError
	}
	return fallback
}
