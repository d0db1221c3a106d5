package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/logger"
)

type DeleteSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	callRepo       call.Repository
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewDeleteSubscriberUseCase(
	subscriberRepo subscriber.Repository,
	callRepo call.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteSubscriberUseCase {
	return &DeleteSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		callRepo:       callRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute removes the subscriber and all of its calls in one transaction.
func (uc *DeleteSubscriberUseCase) Execute(ctx context.Context, sid string) error {
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.subscriberRepo.GetBySID(txCtx, sid)
		if err != nil {
			return err
		}
		if s == nil {
			return subscriber.ErrSubscriberNotFound
		}

		removed, err := uc.callRepo.DeleteBySubscriberID(txCtx, s.ID())
		if err != nil {
			return err
		}

		if err := uc.subscriberRepo.Delete(txCtx, s.ID()); err != nil {
			return err
		}

		uc.logger.Infow("subscriber deleted with its calls", "sid", sid, "calls_removed", removed)
		return nil
	})
}
