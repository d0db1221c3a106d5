package usecases

import (
	"context"
	"encoding/json"

	"github.com/telebill/telebill/internal/application/call/dto"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/rating"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/id"
	"github.com/telebill/telebill/internal/shared/logger"
)

type CreateCallCommand struct {
	SubscriberSID string
	CitySID       string
	Duration      int
	// Date is the raw JSON value; absent or null means now.
	Date json.RawMessage
}

type CreateCallUseCase struct {
	callRepo       call.Repository
	subscriberRepo subscriber.Repository
	cityRepo       city.Repository
	logger         logger.Interface
}

func NewCreateCallUseCase(
	callRepo call.Repository,
	subscriberRepo subscriber.Repository,
	cityRepo city.Repository,
	logger logger.Interface,
) *CreateCallUseCase {
	return &CreateCallUseCase{
		callRepo:       callRepo,
		subscriberRepo: subscriberRepo,
		cityRepo:       cityRepo,
		logger:         logger,
	}
}

// Execute rates and records a call. The cost is computed once here and
// stored with the call.
func (uc *CreateCallUseCase) Execute(ctx context.Context, cmd CreateCallCommand) (*dto.CallDTO, error) {
	// An id of the wrong kind can never resolve.
	if id.ValidatePrefix(cmd.SubscriberSID, id.PrefixSubscriber) != nil {
		return nil, subscriber.ErrSubscriberNotFound
	}
	if id.ValidatePrefix(cmd.CitySID, id.PrefixCity) != nil {
		return nil, city.ErrCityNotFound
	}

	sub, err := uc.subscriberRepo.GetBySID(ctx, cmd.SubscriberSID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, subscriber.ErrSubscriberNotFound
	}

	tariff, err := uc.cityRepo.GetBySID(ctx, cmd.CitySID)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, city.ErrCityNotFound
	}

	ts, ok, err := call.ParseDate(cmd.Date)
	if err != nil {
		return nil, err
	}
	if !ok {
		ts = biztime.NowUTC()
	}

	tod := rating.ClassifyTimeOfDay(ts)
	cost, err := rating.ComputeCost(tariff, cmd.Duration, tod)
	if err != nil {
		return nil, err
	}

	c, err := call.NewCall(sub.ID(), tariff.ID(), ts, cmd.Duration, tod, cost)
	if err != nil {
		return nil, err
	}

	if err := uc.callRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Infow("call rated",
		"sid", c.SID(),
		"subscriber", sub.SID(),
		"city", tariff.SID(),
		"time_of_day", tod,
		"cost", cost,
	)

	return &dto.CallDTO{
		ID:         c.SID(),
		Subscriber: sub.SID(),
		City:       tariff.SID(),
		Duration:   c.Duration(),
		TimeOfDay:  c.TimeOfDay().String(),
		Cost:       c.Cost(),
		Date:       c.Date(),
	}, nil
}
