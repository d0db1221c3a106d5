package subscriber

import "errors"

var (
	// ErrSubscriberNotFound is returned when a subscriber is not found
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrPhoneNumberExists is returned when another subscriber has the phone number
	ErrPhoneNumberExists = errors.New("phone number already exists")

	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidEdrpou      = errors.New("invalid edrpou")
	ErrInvalidAddress     = errors.New("invalid address")
)

// IsValidationError reports whether err is a subscriber field error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPhoneNumber) ||
		errors.Is(err, ErrInvalidEdrpou) ||
		errors.Is(err, ErrInvalidAddress)
}
