package mappers

import (
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/mapper"
)

// SubscriberMapper handles the conversion between subscriber entities and models
type SubscriberMapper interface {
	ToEntity(model *models.SubscriberModel) (*subscriber.Subscriber, error)
	ToModel(entity *subscriber.Subscriber) *models.SubscriberModel
	ToEntities(models []*models.SubscriberModel) ([]*subscriber.Subscriber, error)
}

// SubscriberMapperImpl is the concrete implementation of SubscriberMapper
type SubscriberMapperImpl struct{}

// NewSubscriberMapper creates a new subscriber mapper
func NewSubscriberMapper() SubscriberMapper {
	return &SubscriberMapperImpl{}
}

func (m *SubscriberMapperImpl) ToEntity(model *models.SubscriberModel) (*subscriber.Subscriber, error) {
	if model == nil {
		return nil, nil
	}
	return subscriber.ReconstructSubscriber(
		model.ID,
		model.SID,
		model.PhoneNumber,
		model.Edrpou,
		model.Address,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *SubscriberMapperImpl) ToModel(entity *subscriber.Subscriber) *models.SubscriberModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriberModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		PhoneNumber: entity.PhoneNumber(),
		Edrpou:      entity.Edrpou(),
		Address:     entity.Address(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *SubscriberMapperImpl) ToEntities(modelList []*models.SubscriberModel) ([]*subscriber.Subscriber, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriberModel) uint { return model.ID })
}
