package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/logger"
)

type DeleteCityUseCase struct {
	cityRepo city.Repository
	callRepo call.Repository
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewDeleteCityUseCase(
	cityRepo city.Repository,
	callRepo call.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteCityUseCase {
	return &DeleteCityUseCase{
		cityRepo: cityRepo,
		callRepo: callRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute deletes the city, its calls and its discount tiers atomically.
func (uc *DeleteCityUseCase) Execute(ctx context.Context, sid string) error {
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.cityRepo.GetBySID(txCtx, sid)
		if err != nil {
			return err
		}
		if c == nil {
			return city.ErrCityNotFound
		}

		removed, err := uc.callRepo.DeleteByCityID(txCtx, c.ID())
		if err != nil {
			return err
		}

		if err := uc.cityRepo.Delete(txCtx, c.ID()); err != nil {
			return err
		}

		uc.logger.Infow("city deleted with its calls", "sid", sid, "calls_removed", removed)
		return nil
	})
}
