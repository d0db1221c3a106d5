package mappers

import (
	"sort"

	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/mapper"
)

// CityMapper handles the conversion between city entities and models,
// including the discount tier rows
type CityMapper interface {
	ToEntity(model *models.CityModel) (*city.City, error)
	ToModel(entity *city.City) *models.CityModel
	ToEntities(models []*models.CityModel) ([]*city.City, error)
	ToDiscountModels(entity *city.City) []models.CityDiscountModel
}

// CityMapperImpl is the concrete implementation of CityMapper
type CityMapperImpl struct{}

// NewCityMapper creates a new city mapper
func NewCityMapper() CityMapper {
	return &CityMapperImpl{}
}

// ToEntity converts a city model with preloaded discounts. Tiers come back in
// ascending duration order.
func (m *CityMapperImpl) ToEntity(model *models.CityModel) (*city.City, error) {
	if model == nil {
		return nil, nil
	}

	rows := append([]models.CityDiscountModel(nil), model.Discounts...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Duration < rows[j].Duration })

	discounts := mapper.MapSlice(rows, func(d models.CityDiscountModel) city.Discount {
		return city.ReconstructDiscount(d.Duration, d.DiscountRate)
	})
	if discounts == nil {
		discounts = []city.Discount{}
	}

	return city.ReconstructCity(
		model.ID,
		model.SID,
		model.Name,
		model.DayRate,
		model.NightRate,
		discounts,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts the city row only; tiers are written separately
func (m *CityMapperImpl) ToModel(entity *city.City) *models.CityModel {
	if entity == nil {
		return nil
	}
	return &models.CityModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		DayRate:   entity.DayRate(),
		NightRate: entity.NightRate(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *CityMapperImpl) ToDiscountModels(entity *city.City) []models.CityDiscountModel {
	return mapper.MapSlice(entity.Discounts(), func(d city.Discount) models.CityDiscountModel {
		return models.CityDiscountModel{
			CityID:       entity.ID(),
			Duration:     d.Duration(),
			DiscountRate: d.Rate(),
		}
	})
}

func (m *CityMapperImpl) ToEntities(modelList []*models.CityModel) ([]*city.City, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CityModel) uint { return model.ID })
}
