package mappers

import (
	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
)

// AdminMapper handles the conversion between admin entities and models
type AdminMapper interface {
	ToEntity(model *models.AdminModel) *admin.Admin
	ToModel(entity *admin.Admin) *models.AdminModel
}

// AdminMapperImpl is the concrete implementation of AdminMapper
type AdminMapperImpl struct{}

// NewAdminMapper creates a new admin mapper
func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToEntity(model *models.AdminModel) *admin.Admin {
	if model == nil {
		return nil
	}
	return admin.ReconstructAdmin(model.ID, model.SID, model.Email, model.PasswordHash, model.CreatedAt, model.UpdatedAt)
}

func (m *AdminMapperImpl) ToModel(entity *admin.Admin) *models.AdminModel {
	if entity == nil {
		return nil
	}
	return &models.AdminModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
