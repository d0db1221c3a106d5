package dto

import (
	"encoding/json"

	"github.com/telebill/telebill/internal/application/call/usecases"
)

// CreateCallRequest references the subscriber and city by public ID. Duration
// is in seconds. Date is optional and may be Unix milliseconds or ISO-8601.
type CreateCallRequest struct {
	Subscriber string          `json:"subscriber" validate:"required"`
	City       string          `json:"city" validate:"required"`
	Duration   int             `json:"duration" validate:"gt=0"`
	Date       json.RawMessage `json:"date,omitempty" swaggertype:"string"`
}

func (r *CreateCallRequest) ToCommand() usecases.CreateCallCommand {
	return usecases.CreateCallCommand{
		SubscriberSID: r.Subscriber,
		CitySID:       r.City,
		Duration:      r.Duration,
		Date:          r.Date,
	}
}
