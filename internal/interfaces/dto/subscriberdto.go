package dto

import "github.com/telebill/telebill/internal/application/subscriber/usecases"

// SubscriberRequest is the body of both create and update.
type SubscriberRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,numeric,len=10"`
	Edrpou      string `json:"edrpou" validate:"required,numeric,len=8"`
	Address     string `json:"address" validate:"required,min=5"`
}

func (r *SubscriberRequest) ToCommand() usecases.SubscriberCommand {
	return usecases.SubscriberCommand{
		PhoneNumber: r.PhoneNumber,
		Edrpou:      r.Edrpou,
		Address:     r.Address,
	}
}
