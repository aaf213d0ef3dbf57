package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrMissingFields() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "Missing required fields",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrForbidden() AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_PERMISSION_DENIED,
		Message:  "Unauthorized",
	}
}

// Authentication Errors

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

func ErrInvalidCredentials() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_CREDENTIALS,
		Message:  "Invalid email or password",
	}
}

func ErrSessionExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_SESSION_EXPIRED,
		Message:  "Session has expired",
	}
}

func ErrNoSession() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_NO_SESSION,
		Message:  "No active session",
	}
}

// Conflict Errors
//
// The register endpoint reports duplicate unique fields as 400, not 409.
// That is the published API contract the frontend relies on.

func ErrEmailTaken() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  "Email already registered",
	}
}

func ErrUsernameTaken() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  "Username already taken",
	}
}

// Database Errors

func ErrDBQueryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}
}

func ErrDBTransactionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_TRANSACTION_FAILED,
		Message:  "Database transaction failed",
	}
}
