package errors

import (
	stderrors "errors"
	"net/http"

	"autorent/internal/booking"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
)

// FromEngine maps the engine error taxonomy onto HTTP status codes. Overlap
// is an expected rejection, not a fault, so it travels as 409 with the
// message intact for the calendar UI to display.
func FromEngine(err error) *HTTPError {
	switch {
	case stderrors.Is(err, booking.ErrFormat),
		stderrors.Is(err, booking.ErrInvalidRange),
		stderrors.Is(err, booking.ErrInvalidRate):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case stderrors.Is(err, booking.ErrOverlap),
		stderrors.Is(err, booking.ErrAlreadyPast):
		return NewHTTPError(http.StatusConflict, err.Error())
	case stderrors.Is(err, booking.ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case stderrors.Is(err, booking.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
