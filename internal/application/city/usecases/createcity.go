package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/city/dto"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/logger"
)

// CityCommand carries a full tariff definition. Discount rates are percentages.
type CityCommand struct {
	Name      string
	DayRate   float64
	NightRate float64
	Discounts []city.DiscountInput
}

type CreateCityUseCase struct {
	cityRepo city.Repository
	logger   logger.Interface
}

func NewCreateCityUseCase(cityRepo city.Repository, logger logger.Interface) *CreateCityUseCase {
	return &CreateCityUseCase{
		cityRepo: cityRepo,
		logger:   logger,
	}
}

func (uc *CreateCityUseCase) Execute(ctx context.Context, cmd CityCommand) (*dto.CityDTO, error) {
	exists, err := uc.cityRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, city.ErrCityNameExists
	}

	c, err := city.NewCity(cmd.Name, cmd.DayRate, cmd.NightRate, cmd.Discounts)
	if err != nil {
		uc.logger.Warnw("invalid city tariff", "name", cmd.Name, "error", err)
		return nil, err
	}

	// The unique index still catches a concurrent create of the same name
	if err := uc.cityRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return dto.ToCityDTO(c), nil
}
