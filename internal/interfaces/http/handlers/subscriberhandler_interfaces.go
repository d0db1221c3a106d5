package handlers

import (
	"context"

	subdto "github.com/telebill/telebill/internal/application/subscriber/dto"
	"github.com/telebill/telebill/internal/application/subscriber/usecases"
)

// Use case interfaces for SubscriberHandler

type createSubscriberUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubscriberCommand) (*subdto.SubscriberDTO, error)
}

type updateSubscriberUseCase interface {
	Execute(ctx context.Context, sid string, cmd usecases.SubscriberCommand) (*subdto.SubscriberDTO, error)
}

type deleteSubscriberUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type getSubscriberUseCase interface {
	Execute(ctx context.Context, sid string) (*subdto.SubscriberDetailDTO, error)
}

type listSubscribersUseCase interface {
	Execute(ctx context.Context) ([]*subdto.SubscriberListItemDTO, error)
}
