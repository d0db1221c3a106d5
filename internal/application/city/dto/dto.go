package dto

import (
	"time"

	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/mapper"
)

// DiscountDTO is a stored discount tier; DiscountRate is a fraction.
type DiscountDTO struct {
	Duration     float64 `json:"duration"`
	DiscountRate float64 `json:"discountRate"`
}

type CityDTO struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	DayRate   float64       `json:"dayRate"`
	NightRate float64       `json:"nightRate"`
	Discounts []DiscountDTO `json:"discounts"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func ToCityDTO(c *city.City) *CityDTO {
	if c == nil {
		return nil
	}

	discounts := mapper.MapSlice(c.Discounts(), func(d city.Discount) DiscountDTO {
		return DiscountDTO{Duration: d.Duration(), DiscountRate: d.Rate()}
	})

	return &CityDTO{
		ID:        c.SID(),
		Name:      c.Name(),
		DayRate:   c.DayRate(),
		NightRate: c.NightRate(),
		Discounts: discounts,
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToCityDTOs(cities []*city.City) []*CityDTO {
	out := make([]*CityDTO, 0, len(cities))
	for _, c := range cities {
		out = append(out, ToCityDTO(c))
	}
	return out
}
