package domain

import "errors"

var (
	ErrBikeNotFound    = errors.New("bike not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidWindow = errors.New("rental window start must be before end")
	ErrSlotConflict  = errors.New("the selected slot is already booked")
	ErrNotPending    = errors.New("booking is not in pending status")
	ErrForbidden     = errors.New("not allowed for this user")
	ErrInvalidStatus = errors.New("invalid booking status")
)

var (
	ErrMissingPaymentFields = errors.New("missing required payment details")
	ErrSignatureMismatch    = errors.New("payment signature verification failed")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
