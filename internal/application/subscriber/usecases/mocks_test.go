package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/subscriber"
)

type mockSubscriberRepository struct {
	CreateFunc           func(ctx context.Context, s *subscriber.Subscriber) error
	UpdateFunc           func(ctx context.Context, s *subscriber.Subscriber) error
	DeleteFunc           func(ctx context.Context, id uint) error
	GetBySIDFunc         func(ctx context.Context, sid string) (*subscriber.Subscriber, error)
	GetByPhoneNumberFunc func(ctx context.Context, phone string) (*subscriber.Subscriber, error)
	GetByIDsFunc         func(ctx context.Context, ids []uint) (map[uint]*subscriber.Subscriber, error)
	ListFunc             func(ctx context.Context) ([]*subscriber.Subscriber, error)
}

func (m *mockSubscriberRepository) Create(ctx context.Context, s *subscriber.Subscriber) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	s.SetID(1)
	return nil
}

func (m *mockSubscriberRepository) Update(ctx context.Context, s *subscriber.Subscriber) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriberRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSubscriberRepository) GetBySID(ctx context.Context, sid string) (*subscriber.Subscriber, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockSubscriberRepository) GetByPhoneNumber(ctx context.Context, phone string) (*subscriber.Subscriber, error) {
	if m.GetByPhoneNumberFunc != nil {
		return m.GetByPhoneNumberFunc(ctx, phone)
	}
	return nil, nil
}

func (m *mockSubscriberRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*subscriber.Subscriber, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*subscriber.Subscriber{}, nil
}

func (m *mockSubscriberRepository) List(ctx context.Context) ([]*subscriber.Subscriber, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockCallRepository struct {
	call.Repository
	ListBySubscriberIDFunc   func(ctx context.Context, subscriberID uint) ([]*call.Call, error)
	CountBySubscriberFunc    func(ctx context.Context) (map[uint]int64, error)
	DeleteBySubscriberIDFunc func(ctx context.Context, subscriberID uint) (int64, error)
}

func (m *mockCallRepository) ListBySubscriberID(ctx context.Context, subscriberID uint) ([]*call.Call, error) {
	if m.ListBySubscriberIDFunc != nil {
		return m.ListBySubscriberIDFunc(ctx, subscriberID)
	}
	return nil, nil
}

func (m *mockCallRepository) CountBySubscriber(ctx context.Context) (map[uint]int64, error) {
	if m.CountBySubscriberFunc != nil {
		return m.CountBySubscriberFunc(ctx)
	}
	return map[uint]int64{}, nil
}

func (m *mockCallRepository) DeleteBySubscriberID(ctx context.Context, subscriberID uint) (int64, error) {
	if m.DeleteBySubscriberIDFunc != nil {
		return m.DeleteBySubscriberIDFunc(ctx, subscriberID)
	}
	return 0, nil
}

type mockCityRepository struct {
	city.Repository
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*city.City, error)
}

func (m *mockCityRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*city.City, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*city.City{}, nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
