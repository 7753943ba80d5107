package booking

import "errors"

// Error taxonomy for the reservation engine. Handlers map these onto HTTP
// status codes in internal/errors.
var (
	// ErrFormat: date text does not match YYYY-MM-DD or names an invalid day.
	ErrFormat = errors.New("malformed date")
	// ErrInvalidRange: end date before start date.
	ErrInvalidRange = errors.New("end date before start date")
	// ErrInvalidRate: non-positive per-day rate.
	ErrInvalidRate = errors.New("rate must be positive")
	// ErrOverlap: candidate range shares a day with a committed reservation.
	// Expected and user-recoverable; the caller re-presents the calendar.
	ErrOverlap = errors.New("dates overlap an existing reservation")
	// ErrForbidden: requester is neither the renter, the vehicle owner nor an admin.
	ErrForbidden = errors.New("not allowed")
	// ErrNotFound: unknown vehicle or reservation.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyPast: the reservation has fully elapsed and is immutable history.
	ErrAlreadyPast = errors.New("reservation already in the past")
	// ErrInvariantViolation: two active reservations for one vehicle share a
	// day. Must never happen; surfaced loudly instead of masked.
	ErrInvariantViolation = errors.New("overlapping active reservations found")
)
