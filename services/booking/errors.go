package booking

import "errors"

var (
	// ErrSlotUnavailable is returned when the requested start time is not one
	// of the expert's currently bookable slots.
	ErrSlotUnavailable = errors.New("requested slot is not available")
	// ErrBookingNotFound is returned for unknown or already-cancelled bookings.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrExpertNotFound is returned when the booking names an unknown expert.
	ErrExpertNotFound = errors.New("expert not found")
)
