package handlers

import (
	"context"

	authdto "github.com/telebill/telebill/internal/application/auth/dto"
	"github.com/telebill/telebill/internal/application/auth/usecases"
)

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*authdto.LoginResponse, error)
}
