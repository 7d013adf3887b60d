package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// FieldError describes a single failed field in a validation error.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AppError is a domain error carrying the HTTP status it should map to.
// Services return AppErrors; the central Fiber error handler translates them
// into the JSON envelope.
type AppError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		StatusCode: fiber.StatusNotFound,
		Message:    fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewBadRequestError reports a request the caller can fix.
func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusBadRequest, Message: message}
}

// NewValidationError reports schema-level rejection with per-field detail.
func NewValidationError(message string, fields ...FieldError) *AppError {
	return &AppError{
		StatusCode: fiber.StatusBadRequest,
		Message:    message,
		Errors:     fields,
	}
}

// NewConflictError reports a duplicate resource.
func NewConflictError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusConflict, Message: message}
}

// NewUnauthorizedError reports missing or invalid credentials.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusUnauthorized, Message: message}
}

// NewForbiddenError reports a caller lacking permission.
func NewForbiddenError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusForbidden, Message: message}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{
		StatusCode: fiber.StatusInternalServerError,
		Message:    "Internal server error",
		Err:        err,
	}
}
