package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/subscriber/dto"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/logger"
)

type GetSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	callRepo       call.Repository
	cityRepo       city.Repository
	logger         logger.Interface
}

func NewGetSubscriberUseCase(
	subscriberRepo subscriber.Repository,
	callRepo call.Repository,
	cityRepo city.Repository,
	logger logger.Interface,
) *GetSubscriberUseCase {
	return &GetSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		callRepo:       callRepo,
		cityRepo:       cityRepo,
		logger:         logger,
	}
}

// Execute returns the subscriber with its calls. Calls whose city no longer
// exists are left out.
func (uc *GetSubscriberUseCase) Execute(ctx context.Context, sid string) (*dto.SubscriberDetailDTO, error) {
	s, err := uc.subscriberRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, subscriber.ErrSubscriberNotFound
	}

	calls, err := uc.callRepo.ListBySubscriberID(ctx, s.ID())
	if err != nil {
		return nil, err
	}

	cities, err := uc.cityRepo.GetByIDs(ctx, cityIDs(calls))
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SubscriberCallDTO, 0, len(calls))
	for _, c := range calls {
		ct, ok := cities[c.CityID()]
		if !ok {
			uc.logger.Debugw("skipping call with dangling city", "call", c.SID(), "city_id", c.CityID())
			continue
		}
		out = append(out, &dto.SubscriberCallDTO{
			ID:        c.SID(),
			City:      ct.Name(),
			Duration:  c.Duration(),
			TimeOfDay: c.TimeOfDay().String(),
			Cost:      c.Cost(),
			Date:      c.Date(),
		})
	}

	return &dto.SubscriberDetailDTO{
		Subscriber: dto.ToSubscriberDTO(s),
		Calls:      out,
	}, nil
}

func cityIDs(calls []*call.Call) []uint {
	seen := make(map[uint]struct{}, len(calls))
	ids := make([]uint, 0, len(calls))
	for _, c := range calls {
		if _, ok := seen[c.CityID()]; ok {
			continue
		}
		seen[c.CityID()] = struct{}{}
		ids = append(ids, c.CityID())
	}
	return ids
}
