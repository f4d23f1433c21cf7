package booking

import "errors"

var (
	// ErrMisaligned reports a booking interval that leaves a remainder other than 0 or 30
	// minutes inside a rate band. It can only happen when times bypass the slot grid.
	ErrMisaligned = errors.New("booking interval is not aligned to the half-hour slot grid")

	// ErrNotMonday reports a plan week that does not start on a Monday.
	ErrNotMonday = errors.New("week starting date must be a Monday")

	// ErrInvalidDate reports a week starting date that is not "2006-01-02".
	ErrInvalidDate = errors.New("invalid week starting date")

	// ErrInvalidSession reports a session that cannot be placed on a calendar.
	ErrInvalidSession = errors.New("invalid session")

	// ErrNoCredits reports a purchase request with no parseable credit lines.
	ErrNoCredits = errors.New("no credits to buy")
)
