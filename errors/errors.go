package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// NotFound creates an error for a missing resource, e.g. NotFound("Product", id)
// renders "Product Not Found".
func NotFound(resource, id string) *AppError {
	err := New(ErrCodeNotFound, resource+" Not Found", http.StatusNotFound).
		WithDetail("resource", resource)
	if id != "" {
		err.WithDetail("id", id)
	}
	return err
}

// AlreadyExists creates an error for a unique-key collision.
func AlreadyExists(resource string) *AppError {
	return New(ErrCodeAlreadyExists, fmt.Sprintf("A %s with these details already exists.", resource), http.StatusConflict).
		WithDetail("resource", resource)
}

// Validation creates an error for rejected input.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message, http.StatusBadRequest)
}

// MissingField creates an error for a missing required field.
func MissingField(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("Missing required field: %s", field), http.StatusBadRequest).
		WithDetail("field", field)
}

// OutOfStock reports that quantity units of a product cannot be supplied.
func OutOfStock(productID string, quantity, inStock int) *AppError {
	return New(ErrCodeOutOfStock, "Sorry. Product is out of stock", http.StatusConflict).
		WithDetail("product_id", productID).
		WithDetail("requested", quantity).
		WithDetail("in_stock", inStock)
}

// MissingCredential is returned when a protected request carries no bearer token.
func MissingCredential() *AppError {
	return New(ErrCodeMissingCredential, "No Token", http.StatusUnauthorized)
}

// InvalidCredential is returned when a bearer token fails verification.
// reason distinguishes expired tokens from malformed or forged ones.
func InvalidCredential(reason string) *AppError {
	err := New(ErrCodeInvalidCredential, "Invalid Token", http.StatusUnauthorized)
	if reason != "" {
		err.WithDetail("reason", reason)
	}
	return err
}

// InvalidLogin is returned when sign-in credentials do not match.
func InvalidLogin() *AppError {
	return New(ErrCodeInvalidLogin, "Invalid email or password", http.StatusUnauthorized)
}

// Forbidden creates an error for an authenticated caller lacking permission.
func Forbidden(reason string) *AppError {
	if reason == "" {
		reason = "You don't have permission to perform this action."
	}
	return New(ErrCodeForbidden, reason, http.StatusForbidden)
}

// RateLimited creates an error for too many requests.
func RateLimited() *AppError {
	return New(ErrCodeRateLimited, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
}

// Internal creates an error for an unexpected server failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "An unexpected error occurred. Please try again or contact support.", http.StatusInternalServerError).
		WithCause(cause)
}

// DatabaseError creates an error for a failed persistence operation.
func DatabaseError(cause error) *AppError {
	return New(ErrCodeDatabaseError, "A database error occurred. Please try again.", http.StatusInternalServerError).
		WithCause(cause)
}

// ServiceUnavailable creates an error for a dependency that is down.
func ServiceUnavailable(service string) *AppError {
	return New(ErrCodeServiceUnavailable, fmt.Sprintf("The %s is temporarily unavailable. Please try again.", service), http.StatusServiceUnavailable).
		WithDetail("service", service)
}
