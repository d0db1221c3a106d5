package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/telebill/telebill/internal/application/auth/dto"
	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/shared/logger"
)

// TokenIssuer signs admin session tokens.
type TokenIssuer interface {
	Generate(adminID, email string) (string, time.Time, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	tokens    TokenIssuer
	logger    logger.Interface
}

func NewLoginUseCase(
	adminRepo admin.Repository,
	hasher admin.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	a, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		uc.logger.Warnw("login for unknown admin", "email", email)
		return nil, admin.ErrAdminNotFound
	}

	if err := uc.hasher.Verify(cmd.Password, a.PasswordHash()); err != nil {
		uc.logger.Warnw("login with wrong password", "admin", a.SID())
		return nil, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Generate(a.SID(), a.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "admin", a.SID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("admin logged in", "admin", a.SID())
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
