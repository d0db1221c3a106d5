// Package rating computes the cost of a call from a city tariff.
package rating

import (
	"errors"
	"fmt"
	"time"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/biztime"
)

const (
	// DayStartHour and NightStartHour bound the day tariff: [8, 22) local time.
	DayStartHour   = 8
	NightStartHour = 22

	// RateScale converts a per-minute rate into cost units.
	RateScale = 100
)

// ErrInvalidDuration is returned for a non-positive call duration.
var ErrInvalidDuration = errors.New("invalid call duration")

// ClassifyTimeOfDay buckets ts by its hour in the business timezone.
func ClassifyTimeOfDay(ts time.Time) call.TimeOfDay {
	h := biztime.HourInBiz(ts)
	if h >= DayStartHour && h < NightStartHour {
		return call.TimeOfDayDay
	}
	return call.TimeOfDayNight
}

// SelectDiscount returns the tier with the largest duration not exceeding
// minutes. Tier order does not matter.
func SelectDiscount(discounts []city.Discount, minutes float64) (city.Discount, bool) {
	var (
		best  city.Discount
		found bool
	)
	for _, d := range discounts {
		if d.Duration() > minutes {
			continue
		}
		if !found || d.Duration() > best.Duration() {
			best = d
			found = true
		}
	}
	return best, found
}

// ComputeCost prices a call of durationSeconds under tariff. The result is
// not rounded.
func ComputeCost(tariff *city.City, durationSeconds int, tod call.TimeOfDay) (float64, error) {
	if tariff == nil {
		return 0, city.ErrCityNotFound
	}
	if durationSeconds <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDuration, durationSeconds)
	}

	rate := tariff.NightRate()
	if tod == call.TimeOfDayDay {
		rate = tariff.DayRate()
	}

	minutes := float64(durationSeconds) / 60
	cost := minutes * rate * RateScale

	if d, ok := SelectDiscount(tariff.Discounts(), minutes); ok {
		cost *= 1 - d.Rate()
	}
	return cost, nil
}
