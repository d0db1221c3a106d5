package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/application/call/dto"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/logger"
)

type ListCallsUseCase struct {
	callRepo       call.Repository
	subscriberRepo subscriber.Repository
	cityRepo       city.Repository
	logger         logger.Interface
}

func NewListCallsUseCase(
	callRepo call.Repository,
	subscriberRepo subscriber.Repository,
	cityRepo city.Repository,
	logger logger.Interface,
) *ListCallsUseCase {
	return &ListCallsUseCase{
		callRepo:       callRepo,
		subscriberRepo: subscriberRepo,
		cityRepo:       cityRepo,
		logger:         logger,
	}
}

// Execute returns every call joined with its subscriber phone and city name.
// A call is omitted when either side no longer exists.
func (uc *ListCallsUseCase) Execute(ctx context.Context) ([]*dto.CallViewDTO, error) {
	calls, err := uc.callRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	subIDs, cityIDs := referencedIDs(calls)

	subscribers, err := uc.subscriberRepo.GetByIDs(ctx, subIDs)
	if err != nil {
		return nil, err
	}
	cities, err := uc.cityRepo.GetByIDs(ctx, cityIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CallViewDTO, 0, len(calls))
	dangling := 0
	for _, c := range calls {
		sub, okSub := subscribers[c.SubscriberID()]
		ct, okCity := cities[c.CityID()]
		if !okSub || !okCity {
			dangling++
			continue
		}
		out = append(out, &dto.CallViewDTO{
			ID:         c.SID(),
			Subscriber: sub.PhoneNumber(),
			City:       ct.Name(),
			Date:       c.Date(),
			Duration:   c.Duration(),
			TimeOfDay:  c.TimeOfDay().String(),
			Cost:       c.Cost(),
		})
	}

	if dangling > 0 {
		uc.logger.Warnw("calls with dangling references omitted", "count", dangling)
	}
	return out, nil
}

func referencedIDs(calls []*call.Call) (subscriberIDs, cityIDs []uint) {
	subs := make(map[uint]struct{})
	cities := make(map[uint]struct{})
	for _, c := range calls {
		if _, ok := subs[c.SubscriberID()]; !ok {
			subs[c.SubscriberID()] = struct{}{}
			subscriberIDs = append(subscriberIDs, c.SubscriberID())
		}
		if _, ok := cities[c.CityID()]; !ok {
			cities[c.CityID()] = struct{}{}
			cityIDs = append(cityIDs, c.CityID())
		}
	}
	return subscriberIDs, cityIDs
}
