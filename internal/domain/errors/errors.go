// Package errors defines the application error model shared by the use
// case and delivery layers.
package errors

import (
	"net/http"

	"beacon/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Identity errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid user identity",
		"",
	)

	// Member-related errors
	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Member not found",
		"",
	)

	// Token registry errors
	ErrTokenRequired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_REQUIRED",
		"A device token is required",
		"",
	)

	// Inbox errors
	ErrMarkReadInput = NewBaseError(
		http.StatusBadRequest,
		"MARK_READ_INPUT",
		"Must provide notificationIds or markAllAsRead",
		"",
	)

	// Dispatch errors
	ErrDispatchValidation = NewBaseError(
		http.StatusBadRequest,
		"DISPATCH_VALIDATION",
		"Missing title or body",
		"",
	)

	ErrDispatchTarget = NewBaseError(
		http.StatusBadRequest,
		"DISPATCH_TARGET",
		"Must provide userId, userIds, or topic",
		"",
	)

	ErrPushUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PUSH_UNAVAILABLE",
		"Push provider is not configured",
		"",
	)

	// Store errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		"Notification store is unavailable",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as a generic
// store failure while keeping the cause in the details for operators.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		message,
		err.Error(),
	)
}
