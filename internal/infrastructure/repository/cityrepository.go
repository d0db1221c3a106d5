package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/infrastructure/persistence/mappers"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
)

// CityRepositoryImpl implements city.Repository
type CityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CityMapper
	logger logger.Interface
}

// NewCityRepository creates a new city repository instance
func NewCityRepository(db *gorm.DB, logger logger.Interface) city.Repository {
	return &CityRepositoryImpl{
		db:     db,
		mapper: mappers.NewCityMapper(),
		logger: logger,
	}
}

// Create stores the city row and its discount tiers together
func (r *CityRepositoryImpl) Create(ctx context.Context, c *city.City) error {
	model := r.mapper.ToModel(c)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		c.SetID(model.ID)
		return r.insertDiscounts(tx, c)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return city.ErrCityNameExists
		}
		r.logger.Errorw("failed to create city", "name", c.Name(), "error", err)
		return fmt.Errorf("failed to create city: %w", err)
	}

	r.logger.Infow("city created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// Update rewrites the city row and swaps the whole discount set
func (r *CityRepositoryImpl) Update(ctx context.Context, c *city.City) error {
	model := r.mapper.ToModel(c)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CityModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"name":       model.Name,
				"day_rate":   model.DayRate,
				"night_rate": model.NightRate,
				"updated_at": model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if err := tx.Where("city_id = ?", model.ID).Delete(&models.CityDiscountModel{}).Error; err != nil {
			return err
		}
		return r.insertDiscounts(tx, c)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return city.ErrCityNameExists
		}
		r.logger.Errorw("failed to update city", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update city: %w", err)
	}

	return nil
}

func (r *CityRepositoryImpl) insertDiscounts(tx *gorm.DB, c *city.City) error {
	rows := r.mapper.ToDiscountModels(c)
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// Delete removes the discount tiers and then the city
func (r *CityRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var affected int64
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("city_id = ?", id).Delete(&models.CityDiscountModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CityModel{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete city", "id", id, "error", err)
		return fmt.Errorf("failed to delete city: %w", err)
	}
	if affected == 0 {
		return city.ErrCityNotFound
	}

	r.logger.Infow("city deleted", "id", id)
	return nil
}

// GetBySID retrieves a city by its public ID
func (r *CityRepositoryImpl) GetBySID(ctx context.Context, sid string) (*city.City, error) {
	return r.first(ctx, "sid = ?", sid)
}

// GetByName retrieves a city by exact name
func (r *CityRepositoryImpl) GetByName(ctx context.Context, name string) (*city.City, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *CityRepositoryImpl) first(ctx context.Context, query string, arg interface{}) (*city.City, error) {
	var model models.CityModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Discounts").
		Where(query, arg).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get city", "query", query, "value", arg, "error", err)
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map city model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map city: %w", err)
	}
	return entity, nil
}

// GetByIDs retrieves the cities that still exist among ids
func (r *CityRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*city.City, error) {
	result := make(map[uint]*city.City, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.CityModel
	if err := db.GetTxFromContext(ctx, r.db).Preload("Discounts").Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get cities by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get cities by IDs: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map city models to entities", "error", err)
		return nil, fmt.Errorf("failed to map cities: %w", err)
	}
	for _, c := range entities {
		result[c.ID()] = c
	}
	return result, nil
}

// List retrieves all cities in creation order
func (r *CityRepositoryImpl) List(ctx context.Context) ([]*city.City, error) {
	var modelList []*models.CityModel
	if err := db.GetTxFromContext(ctx, r.db).Preload("Discounts").Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list cities", "error", err)
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map city models to entities", "error", err)
		return nil, fmt.Errorf("failed to map cities: %w", err)
	}
	return entities, nil
}

// ExistsByName checks if a city with the exact name exists
func (r *CityRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CityModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check city name", "name", name, "error", err)
		return false, fmt.Errorf("failed to check city name: %w", err)
	}
	return count > 0, nil
}
