package handlers

import (
	"context"

	calldto "github.com/telebill/telebill/internal/application/call/dto"
	"github.com/telebill/telebill/internal/application/call/usecases"
)

// Use case interfaces for CallHandler

type createCallUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCallCommand) (*calldto.CallDTO, error)
}

type listCallsUseCase interface {
	Execute(ctx context.Context) ([]*calldto.CallViewDTO, error)
}

type deleteCallUseCase interface {
	Execute(ctx context.Context, sid string) error
}
