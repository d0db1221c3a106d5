package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/infrastructure/persistence/mappers"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
)

// SubscriberRepositoryImpl implements subscriber.Repository
type SubscriberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriberMapper
	logger logger.Interface
}

// NewSubscriberRepository creates a new subscriber repository instance
func NewSubscriberRepository(db *gorm.DB, logger logger.Interface) subscriber.Repository {
	return &SubscriberRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriberMapper(),
		logger: logger,
	}
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, s *subscriber.Subscriber) error {
	model := r.mapper.ToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return subscriber.ErrPhoneNumberExists
		}
		r.logger.Errorw("failed to create subscriber", "phone_number", s.PhoneNumber(), "error", err)
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	s.SetID(model.ID)
	r.logger.Infow("subscriber created", "id", model.ID, "sid", model.SID)
	return nil
}

func (r *SubscriberRepositoryImpl) Update(ctx context.Context, s *subscriber.Subscriber) error {
	model := r.mapper.ToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriberModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"phone_number": model.PhoneNumber,
			"edrpou":       model.Edrpou,
			"address":      model.Address,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return subscriber.ErrPhoneNumberExists
		}
		r.logger.Errorw("failed to update subscriber", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscriber: %w", result.Error)
	}

	return nil
}

func (r *SubscriberRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SubscriberModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscriber", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete subscriber: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscriber.ErrSubscriberNotFound
	}

	r.logger.Infow("subscriber deleted", "id", id)
	return nil
}

func (r *SubscriberRepositoryImpl) GetBySID(ctx context.Context, sid string) (*subscriber.Subscriber, error) {
	return r.first(ctx, "sid = ?", sid)
}

func (r *SubscriberRepositoryImpl) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*subscriber.Subscriber, error) {
	return r.first(ctx, "phone_number = ?", phoneNumber)
}

func (r *SubscriberRepositoryImpl) first(ctx context.Context, query string, arg interface{}) (*subscriber.Subscriber, error) {
	var model models.SubscriberModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscriber", "query", query, "value", arg, "error", err)
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriberRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*subscriber.Subscriber, error) {
	result := make(map[uint]*subscriber.Subscriber, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.SubscriberModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get subscribers by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get subscribers by IDs: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscribers: %w", err)
	}
	for _, s := range entities {
		result[s.ID()] = s
	}
	return result, nil
}

func (r *SubscriberRepositoryImpl) List(ctx context.Context) ([]*subscriber.Subscriber, error) {
	var modelList []*models.SubscriberModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscribers", "error", err)
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
