package usecase

import (
	"errors"
	"fmt"
)

// Failure categories. Handlers map them to status codes with errors.Is.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrInvalidRoomID = fmt.Errorf("roomId must be a positive integer: %w", ErrBadRequest)

	ErrEnrollmentNotFound = fmt.Errorf("enrollment %w", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("booking %w", ErrNotFound)
	ErrRoomNotFound       = fmt.Errorf("room %w", ErrNotFound)

	ErrTicketNotEligible = fmt.Errorf("ticket does not allow this hotel booking: %w", ErrForbidden)
	ErrRoomFull          = fmt.Errorf("room is full: %w", ErrForbidden)
	ErrAlreadyBooked     = fmt.Errorf("user already has a booking: %w", ErrForbidden)
)

var (
	ErrEmailTaken         = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
)

// outcome labels an operation result for metrics
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
