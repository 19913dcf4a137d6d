package domain

import "errors"

// Sentinel errors returned by the engine. None of these is retryable: they
// are either user-correctable input problems or caller contract violations.
var (
	// ErrDatesUnavailable: the requested range overlaps an active booking or
	// a blocked date. Caller should re-prompt for different dates.
	ErrDatesUnavailable = errors.New("dates unavailable")

	// ErrInvalidTransition: the caller attempted an illegal lifecycle change,
	// e.g. out of a terminal state. A correctly driven UI never triggers it.
	ErrInvalidTransition = errors.New("invalid booking transition")

	// ErrInsufficientFunds: withdrawal amount exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBookingExists: blocking a date that an active booking already covers.
	ErrBookingExists = errors.New("an active booking covers this date")

	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMaintenanceMode    = errors.New("platform is in maintenance mode")
)
