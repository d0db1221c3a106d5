package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/infrastructure/persistence/mappers"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/constants"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/logger"
)

// CallRepositoryImpl implements call.Repository
type CallRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CallMapper
	logger logger.Interface
}

// NewCallRepository creates a new call repository instance
func NewCallRepository(db *gorm.DB, logger logger.Interface) call.Repository {
	return &CallRepositoryImpl{
		db:     db,
		mapper: mappers.NewCallMapper(),
		logger: logger,
	}
}

func (r *CallRepositoryImpl) Create(ctx context.Context, c *call.Call) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create call",
			"subscriber_id", c.SubscriberID(),
			"city_id", c.CityID(),
			"error", err)
		return fmt.Errorf("failed to create call: %w", err)
	}

	c.SetID(model.ID)
	r.logger.Infow("call created", "id", model.ID, "sid", model.SID, "cost", model.Cost)
	return nil
}

func (r *CallRepositoryImpl) GetBySID(ctx context.Context, sid string) (*call.Call, error) {
	var model models.CallModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get call by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CallRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CallModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete call", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete call: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return call.ErrCallNotFound
	}
	return nil
}

// List returns every call, newest first
func (r *CallRepositoryImpl) List(ctx context.Context) ([]*call.Call, error) {
	return r.find(ctx, db.GetTxFromContext(ctx, r.db))
}

func (r *CallRepositoryImpl) ListBySubscriberID(ctx context.Context, subscriberID uint) ([]*call.Call, error) {
	return r.find(ctx, db.GetTxFromContext(ctx, r.db).Where("subscriber_id = ?", subscriberID))
}

func (r *CallRepositoryImpl) find(ctx context.Context, query *gorm.DB) ([]*call.Call, error) {
	var modelList []*models.CallModel
	if err := query.Order("date DESC, id DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list calls", "error", err)
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map call models to entities", "error", err)
		return nil, fmt.Errorf("failed to map calls: %w", err)
	}
	return entities, nil
}

type subscriberCallCount struct {
	SubscriberID uint
	Count        int64
}

// CountBySubscriber runs one grouped count over the ledger
func (r *CallRepositoryImpl) CountBySubscriber(ctx context.Context) (map[uint]int64, error) {
	var rows []subscriberCallCount
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CallModel{}).
		Select("subscriber_id, COUNT(*) AS count").
		Group("subscriber_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count calls by subscriber", "error", err)
		return nil, fmt.Errorf("failed to count calls by subscriber: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.SubscriberID] = row.Count
	}
	return counts, nil
}

func (r *CallRepositoryImpl) DeleteBySubscriberID(ctx context.Context, subscriberID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("subscriber_id = ?", subscriberID).Delete(&models.CallModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete calls by subscriber", "subscriber_id", subscriberID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete calls by subscriber: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CallRepositoryImpl) DeleteByCityID(ctx context.Context, cityID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("city_id = ?", cityID).Delete(&models.CallModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete calls by city", "city_id", cityID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete calls by city: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOrphans removes calls pointing at a subscriber or city that is gone
func (r *CallRepositoryImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	cond := fmt.Sprintf(
		"subscriber_id NOT IN (SELECT id FROM %s) OR city_id NOT IN (SELECT id FROM %s)",
		constants.TableSubscribers, constants.TableCities,
	)

	result := db.GetTxFromContext(ctx, r.db).Where(cond).Delete(&models.CallModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete orphaned calls", "error", result.Error)
		return 0, fmt.Errorf("failed to delete orphaned calls: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Warnw("orphaned calls deleted", "count", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
