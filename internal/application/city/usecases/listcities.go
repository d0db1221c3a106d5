package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/city/dto"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/logger"
)

type ListCitiesUseCase struct {
	cityRepo city.Repository
	logger   logger.Interface
}

func NewListCitiesUseCase(cityRepo city.Repository, logger logger.Interface) *ListCitiesUseCase {
	return &ListCitiesUseCase{
		cityRepo: cityRepo,
		logger:   logger,
	}
}

func (uc *ListCitiesUseCase) Execute(ctx context.Context) ([]*dto.CityDTO, error) {
	cities, err := uc.cityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCityDTOs(cities), nil
}
