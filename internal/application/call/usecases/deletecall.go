package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/shared/logger"
)

type DeleteCallUseCase struct {
	callRepo call.Repository
	logger   logger.Interface
}

func NewDeleteCallUseCase(callRepo call.Repository, logger logger.Interface) *DeleteCallUseCase {
	return &DeleteCallUseCase{
		callRepo: callRepo,
		logger:   logger,
	}
}

func (uc *DeleteCallUseCase) Execute(ctx context.Context, sid string) error {
	c, err := uc.callRepo.GetBySID(ctx, sid)
	if err != nil {
		return err
	}
	if c == nil {
		return call.ErrCallNotFound
	}

	if err := uc.callRepo.Delete(ctx, c.ID()); err != nil {
		return err
	}

	uc.logger.Infow("call deleted", "sid", sid)
	return nil
}
