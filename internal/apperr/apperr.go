package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a categorized application error. The category decides the HTTP
// status; Message is the user-visible text and never carries internal detail.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Validation(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause stays available for logs
// but never reaches the response body.
func Internal(cause error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: "Error interno del servidor", cause: cause}
}

// Status maps any error to its HTTP status, defaulting to 500.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return fiber.StatusInternalServerError
}

// Message returns the user-visible message for err without leaking internals.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Error interno del servidor"
}
