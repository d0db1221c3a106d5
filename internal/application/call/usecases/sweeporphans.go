package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/call/dto"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/shared/logger"
)

// SweepOrphansUseCase deletes calls left behind by a subscriber or city that
// no longer exists. Running it twice removes nothing the second time.
type SweepOrphansUseCase struct {
	callRepo call.Repository
	logger   logger.Interface
}

func NewSweepOrphansUseCase(callRepo call.Repository, logger logger.Interface) *SweepOrphansUseCase {
	return &SweepOrphansUseCase{
		callRepo: callRepo,
		logger:   logger,
	}
}

func (uc *SweepOrphansUseCase) Execute(ctx context.Context) (*dto.SweepResultDTO, error) {
	removed, err := uc.callRepo.DeleteOrphans(ctx)
	if err != nil {
		uc.logger.Errorw("orphan sweep failed", "error", err)
		return nil, err
	}

	uc.logger.Infow("orphan sweep finished", "removed", removed)
	return &dto.SweepResultDTO{Removed: removed}, nil
}
