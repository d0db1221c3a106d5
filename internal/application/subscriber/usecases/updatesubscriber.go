package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/subscriber/dto"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/logger"
)

type UpdateSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewUpdateSubscriberUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *UpdateSubscriberUseCase {
	return &UpdateSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *UpdateSubscriberUseCase) Execute(ctx context.Context, sid string, cmd SubscriberCommand) (*dto.SubscriberDTO, error) {
	s, err := uc.subscriberRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, subscriber.ErrSubscriberNotFound
	}

	holder, err := uc.subscriberRepo.GetByPhoneNumber(ctx, cmd.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if holder != nil && holder.ID() != s.ID() {
		return nil, subscriber.ErrPhoneNumberExists
	}

	if err := s.Update(cmd.PhoneNumber, cmd.Edrpou, cmd.Address); err != nil {
		return nil, err
	}

	if err := uc.subscriberRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	return dto.ToSubscriberDTO(s), nil
}
