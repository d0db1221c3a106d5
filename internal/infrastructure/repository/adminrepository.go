package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/infrastructure/persistence/mappers"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
)

// AdminRepositoryImpl implements admin.Repository
type AdminRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
	logger logger.Interface
}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepositoryImpl{
		db:     db,
		mapper: mappers.NewAdminMapper(),
		logger: logger,
	}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return admin.ErrAdminEmailExists
		}
		r.logger.Errorw("failed to create admin", "email", a.Email(), "error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}

	a.SetID(model.ID)
	r.logger.Infow("admin created", "id", model.ID, "sid", model.SID)
	return nil
}

func (r *AdminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model models.AdminModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin by email", "error", err)
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}
