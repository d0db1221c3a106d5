package handlers

import (
	"context"

	citydto "github.com/telebill/telebill/internal/application/city/dto"
	"github.com/telebill/telebill/internal/application/city/usecases"
)

// Use case interfaces for CityHandler

type createCityUseCase interface {
	Execute(ctx context.Context, cmd usecases.CityCommand) (*citydto.CityDTO, error)
}

type updateCityUseCase interface {
	Execute(ctx context.Context, sid string, cmd usecases.CityCommand) (*citydto.CityDTO, error)
}

type deleteCityUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type listCitiesUseCase interface {
	Execute(ctx context.Context) ([]*citydto.CityDTO, error)
}
