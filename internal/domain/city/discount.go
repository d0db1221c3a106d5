package city

import "fmt"

// MaxDiscounts is the number of discount tiers a city may carry.
const MaxDiscounts = 3

// DiscountInput is a tier as entered by an operator: the rate is a percentage.
type DiscountInput struct {
	Duration     float64
	DiscountRate float64
}

// Discount is a volume discount tier. Calls of at least Duration minutes get
// Rate (a fraction in (0,1]) taken off their cost.
type Discount struct {
	duration float64
	rate     float64
}

// NewDiscount builds a tier from a percentage in (0,100].
func NewDiscount(durationMinutes, percent float64) (Discount, error) {
	if durationMinutes <= 0 {
		return Discount{}, fmt.Errorf("%w: duration must be greater than 0", ErrInvalidDiscount)
	}
	if percent <= 0 || percent > 100 {
		return Discount{}, fmt.Errorf("%w: discount rate must be in (0, 100]", ErrInvalidDiscount)
	}
	return Discount{duration: durationMinutes, rate: percent / 100}, nil
}

// ReconstructDiscount rebuilds a stored tier; rate is already a fraction.
func ReconstructDiscount(durationMinutes, rate float64) Discount {
	return Discount{duration: durationMinutes, rate: rate}
}

func (d Discount) Duration() float64 { return d.duration }
func (d Discount) Rate() float64     { return d.rate }

func buildDiscounts(inputs []DiscountInput) ([]Discount, error) {
	if len(inputs) > MaxDiscounts {
		return nil, fmt.Errorf("%w: at most %d allowed, got %d", ErrTooManyDiscounts, MaxDiscounts, len(inputs))
	}

	seen := make(map[float64]struct{}, len(inputs))
	discounts := make([]Discount, 0, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.Duration]; dup {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateDiscountDuration, in.Duration)
		}
		seen[in.Duration] = struct{}{}

		d, err := NewDiscount(in.Duration, in.DiscountRate)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	return discounts, nil
}
