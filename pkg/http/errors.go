package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// --- Upstream call errors ---

// ConfigError means the client cannot issue calls at all.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// ErrMissingAPIKey is returned when no API credential is configured.
var ErrMissingAPIKey = &ConfigError{Reason: "API key is not set"}

// TimeoutError means a call exceeded its deadline and was aborted.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("GET %s: timed out after %s", e.Path, e.Timeout)
}

// StatusError means the upstream answered with a non-success status.
type StatusError struct {
	Path string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
	}
	return fmt.Sprintf("HTTP %d %s", e.Code, http.StatusText(e.Code))
}

// NetworkError wraps transport-level failures.
type NetworkError struct {
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ErrorKind maps an upstream call error to a low-cardinality label for
// metrics and logs.
func ErrorKind(err error) string {
	var (
		ce *ConfigError
		te *TimeoutError
		se *StatusError
		ne *NetworkError
	)
	switch {
	case errors.As(err, &ce):
		return "config"
	case errors.As(err, &te):
		return "timeout"
	case errors.As(err, &se):
		return "http"
	case errors.As(err, &ne):
		return "network"
	default:
		return "other"
	}
}

// --- API-side errors ---

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

// NotFoundError creates a 404 error.
func NotFoundError(message string) *AppError {
	return NewAppError("ERR_NOT_FOUND", message, http.StatusNotFound)
}

// NotFoundErrorf creates a 404 error with formatting.
func NotFoundErrorf(format string, a ...interface{}) *AppError {
	return NotFoundError(fmt.Sprintf(format, a...))
}

// BadRequestError creates a 400 error.
func BadRequestError(message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", message, http.StatusBadRequest)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", message, http.StatusInternalServerError)
}
