package usecases

import (
	"context"
	"fmt"

	"github.com/telebill/telebill/internal/application/auth/dto"
	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/shared/logger"
)

// MinPasswordLength matches the login form minimum.
const MinPasswordLength = 5

type CreateAdminCommand struct {
	Email    string
	Password string
}

type CreateAdminUseCase struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	logger    logger.Interface
}

func NewCreateAdminUseCase(adminRepo admin.Repository, hasher admin.PasswordHasher, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*dto.AdminDTO, error) {
	if len(cmd.Password) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	a, err := admin.NewAdmin(cmd.Email, hash)
	if err != nil {
		return nil, err
	}

	existing, err := uc.adminRepo.GetByEmail(ctx, a.Email())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, admin.ErrAdminEmailExists
	}

	if err := uc.adminRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.logger.Infow("admin created", "admin", a.SID(), "email", a.Email())
	return &dto.AdminDTO{ID: a.SID(), Email: a.Email(), CreatedAt: a.CreatedAt()}, nil
}
