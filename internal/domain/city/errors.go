package city

import "errors"

var (
	// ErrCityNotFound is returned when a city is not found
	ErrCityNotFound = errors.New("city not found")

	// ErrCityNameExists is returned when another city already uses the name
	ErrCityNameExists = errors.New("city name already exists")

	// ErrInvalidName is returned when the city name is too short
	ErrInvalidName = errors.New("invalid city name")

	// ErrInvalidRate is returned when a day or night rate is not positive
	ErrInvalidRate = errors.New("invalid rate")

	// ErrInvalidDiscount is returned when a discount tier has a bad duration or rate
	ErrInvalidDiscount = errors.New("invalid discount")

	// ErrTooManyDiscounts is returned when more than MaxDiscounts tiers are given
	ErrTooManyDiscounts = errors.New("too many discounts")

	// ErrDuplicateDiscountDuration is returned when two tiers share a duration
	ErrDuplicateDiscountDuration = errors.New("duplicate discount duration")
)

// IsValidationError reports whether err is one of the tariff invariant errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidDiscount) ||
		errors.Is(err, ErrTooManyDiscounts) ||
		errors.Is(err, ErrDuplicateDiscountDuration)
}
