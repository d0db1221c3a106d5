package call

import "errors"

var (
	// ErrCallNotFound is returned when a call is not found
	ErrCallNotFound = errors.New("call not found")

	// ErrInvalidDate is returned when a call date cannot be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidCall is returned when a call is missing a reference or duration
	ErrInvalidCall = errors.New("invalid call")
)
