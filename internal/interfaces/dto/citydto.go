package dto

import (
	"github.com/telebill/telebill/internal/application/city/usecases"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/mapper"
)

// DiscountRequest is a tier as entered by an operator. DiscountRate is a
// percentage; responses carry the stored fraction.
type DiscountRequest struct {
	Duration     float64 `json:"duration" validate:"gt=0"`
	DiscountRate float64 `json:"discountRate" validate:"gt=0,lte=100"`
}

// CityRequest is the body of both create and update. Discounts must be
// present because an update replaces the whole tier set; [] clears it.
type CityRequest struct {
	Name      string            `json:"name" validate:"required,min=3"`
	DayRate   float64           `json:"dayRate" validate:"gt=0"`
	NightRate float64           `json:"nightRate" validate:"gt=0"`
	Discounts []DiscountRequest `json:"discounts" validate:"required,max=3,unique=Duration,dive"`
}

func (r *CityRequest) ToCommand() usecases.CityCommand {
	return usecases.CityCommand{
		Name:      r.Name,
		DayRate:   r.DayRate,
		NightRate: r.NightRate,
		Discounts: mapper.MapSlice(r.Discounts, func(d DiscountRequest) city.DiscountInput {
			return city.DiscountInput{Duration: d.Duration, DiscountRate: d.DiscountRate}
		}),
	}
}
