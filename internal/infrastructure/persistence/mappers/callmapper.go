package mappers

import (
	"fmt"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/mapper"
)

// CallMapper handles the conversion between call entities and models
type CallMapper interface {
	ToEntity(model *models.CallModel) (*call.Call, error)
	ToModel(entity *call.Call) *models.CallModel
	ToEntities(models []*models.CallModel) ([]*call.Call, error)
}

// CallMapperImpl is the concrete implementation of CallMapper
type CallMapperImpl struct{}

// NewCallMapper creates a new call mapper
func NewCallMapper() CallMapper {
	return &CallMapperImpl{}
}

func (m *CallMapperImpl) ToEntity(model *models.CallModel) (*call.Call, error) {
	if model == nil {
		return nil, nil
	}

	tod, err := call.ParseTimeOfDay(model.TimeOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to parse time of day: %w", err)
	}

	return call.ReconstructCall(
		model.ID,
		model.SID,
		model.SubscriberID,
		model.CityID,
		model.Date.UTC(),
		model.Duration,
		tod,
		model.Cost,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *CallMapperImpl) ToModel(entity *call.Call) *models.CallModel {
	if entity == nil {
		return nil
	}
	return &models.CallModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		SubscriberID: entity.SubscriberID(),
		CityID:       entity.CityID(),
		Date:         entity.Date(),
		Duration:     entity.Duration(),
		TimeOfDay:    entity.TimeOfDay().String(),
		Cost:         entity.Cost(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *CallMapperImpl) ToEntities(modelList []*models.CallModel) ([]*call.Call, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CallModel) uint { return model.ID })
}
