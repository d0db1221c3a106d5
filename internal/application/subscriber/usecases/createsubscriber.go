package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/subscriber/dto"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/logger"
)

type SubscriberCommand struct {
	PhoneNumber string
	Edrpou      string
	Address     string
}

type CreateSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewCreateSubscriberUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *CreateSubscriberUseCase {
	return &CreateSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *CreateSubscriberUseCase) Execute(ctx context.Context, cmd SubscriberCommand) (*dto.SubscriberDTO, error) {
	existing, err := uc.subscriberRepo.GetByPhoneNumber(ctx, cmd.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, subscriber.ErrPhoneNumberExists
	}

	s, err := subscriber.NewSubscriber(cmd.PhoneNumber, cmd.Edrpou, cmd.Address)
	if err != nil {
		return nil, err
	}

	if err := uc.subscriberRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("subscriber created", "sid", s.SID())
	return dto.ToSubscriberDTO(s), nil
}
