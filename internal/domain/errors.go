package domain

import "errors"

var (
	ErrToolNotFound    = errors.New("tool not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidDateRange    = errors.New("end date must be on or after start date")
	ErrNotAvailable        = errors.New("tool is not available for those dates")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
	ErrNotOwnedByCaller    = errors.New("caller does not own this resource")
	ErrHasFutureBookings   = errors.New("tool has future confirmed bookings")
	ErrReviewNotAllowed    = errors.New("review requires a completed booking")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
