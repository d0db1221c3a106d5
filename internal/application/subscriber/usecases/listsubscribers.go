package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/subscriber/dto"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/logger"
)

type ListSubscribersUseCase struct {
	subscriberRepo subscriber.Repository
	callRepo       call.Repository
	logger         logger.Interface
}

func NewListSubscribersUseCase(subscriberRepo subscriber.Repository, callRepo call.Repository, logger logger.Interface) *ListSubscribersUseCase {
	return &ListSubscribersUseCase{
		subscriberRepo: subscriberRepo,
		callRepo:       callRepo,
		logger:         logger,
	}
}

func (uc *ListSubscribersUseCase) Execute(ctx context.Context) ([]*dto.SubscriberListItemDTO, error) {
	subscribers, err := uc.subscriberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := uc.callRepo.CountBySubscriber(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SubscriberListItemDTO, 0, len(subscribers))
	for _, s := range subscribers {
		out = append(out, &dto.SubscriberListItemDTO{
			SubscriberDTO: *dto.ToSubscriberDTO(s),
			CallsCount:    counts[s.ID()],
		})
	}
	return out, nil
}
