package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/city/dto"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/logger"
)

type UpdateCityUseCase struct {
	cityRepo city.Repository
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewUpdateCityUseCase(cityRepo city.Repository, txMgr db.Transactor, logger logger.Interface) *UpdateCityUseCase {
	return &UpdateCityUseCase{
		cityRepo: cityRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute replaces the tariff of the city identified by sid. Keeping the
// current name is allowed; taking another city's name is a conflict.
func (uc *UpdateCityUseCase) Execute(ctx context.Context, sid string, cmd CityCommand) (*dto.CityDTO, error) {
	var updated *city.City

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.cityRepo.GetBySID(txCtx, sid)
		if err != nil {
			return err
		}
		if c == nil {
			return city.ErrCityNotFound
		}

		holder, err := uc.cityRepo.GetByName(txCtx, cmd.Name)
		if err != nil {
			return err
		}
		if holder != nil && holder.ID() != c.ID() {
			return city.ErrCityNameExists
		}

		if err := c.Update(cmd.Name, cmd.DayRate, cmd.NightRate, cmd.Discounts); err != nil {
			uc.logger.Warnw("invalid city tariff", "sid", sid, "error", err)
			return err
		}

		if err := uc.cityRepo.Update(txCtx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("city updated", "sid", sid)
	return dto.ToCityDTO(updated), nil
}
