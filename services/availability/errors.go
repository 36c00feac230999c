package availability

import "errors"

// Precondition failures surfaced by the slot computation. An empty slot list
// is never reported through an error; these mark invalid input only.
var (
	ErrInvalidTimeFormat = errors.New("invalid time format, want HH:MM")
	ErrInvalidDuration   = errors.New("session duration must be a positive number of minutes")
	ErrInvalidWindow     = errors.New("availability window start must precede its end")
)

// Failures surfaced by the service layer around the computation.
var (
	ErrExpertNotFound     = errors.New("expert not found")
	ErrDurationNotOffered = errors.New("expert does not offer sessions of the requested duration")
)
