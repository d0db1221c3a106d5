package dto

import (
	"time"

	"github.com/telebill/telebill/internal/domain/subscriber"
)

type SubscriberDTO struct {
	ID          string    `json:"_id"`
	PhoneNumber string    `json:"phoneNumber"`
	Edrpou      string    `json:"edrpou"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SubscriberListItemDTO adds the derived call count to a subscriber.
type SubscriberListItemDTO struct {
	SubscriberDTO
	CallsCount int64 `json:"callsCount"`
}

// SubscriberCallDTO is a call as seen from its subscriber; City is the city name.
type SubscriberCallDTO struct {
	ID        string    `json:"_id"`
	City      string    `json:"city"`
	Duration  int       `json:"duration"`
	TimeOfDay string    `json:"timeOfDay"`
	Cost      float64   `json:"cost"`
	Date      time.Time `json:"date"`
}

type SubscriberDetailDTO struct {
	Subscriber *SubscriberDTO       `json:"subscriber"`
	Calls      []*SubscriberCallDTO `json:"calls"`
}

func ToSubscriberDTO(s *subscriber.Subscriber) *SubscriberDTO {
	if s == nil {
		return nil
	}
	return &SubscriberDTO{
		ID:          s.SID(),
		PhoneNumber: s.PhoneNumber(),
		Edrpou:      s.Edrpou(),
		Address:     s.Address(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}
