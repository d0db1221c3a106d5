package dto

import (
	"time"
)

// CallDTO is a freshly rated call. Subscriber and City carry public IDs.
type CallDTO struct {
	ID         string    `json:"_id"`
	Subscriber string    `json:"subscriber"`
	City       string    `json:"city"`
	Duration   int       `json:"duration"`
	TimeOfDay  string    `json:"timeOfDay"`
	Cost       float64   `json:"cost"`
	Date       time.Time `json:"date"`
}

// CallViewDTO is a ledger row joined for display: Subscriber is the phone
// number and City the city name.
type CallViewDTO struct {
	ID         string    `json:"_id"`
	Subscriber string    `json:"subscriber"`
	City       string    `json:"city"`
	Date       time.Time `json:"date"`
	Duration   int       `json:"duration"`
	TimeOfDay  string    `json:"timeOfDay"`
	Cost       float64   `json:"cost"`
}

type SweepResultDTO struct {
	Removed int64 `json:"removed"`
}
