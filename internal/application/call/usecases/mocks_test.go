package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/subscriber"
)

type mockCallRepository struct {
	call.Repository
	CreateFunc        func(ctx context.Context, c *call.Call) error
	GetBySIDFunc      func(ctx context.Context, sid string) (*call.Call, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context) ([]*call.Call, error)
	DeleteOrphansFunc func(ctx context.Context) (int64, error)
}

func (m *mockCallRepository) Create(ctx context.Context, c *call.Call) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(1)
	return nil
}

func (m *mockCallRepository) GetBySID(ctx context.Context, sid string) (*call.Call, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCallRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCallRepository) List(ctx context.Context) ([]*call.Call, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCallRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	if m.DeleteOrphansFunc != nil {
		return m.DeleteOrphansFunc(ctx)
	}
	return 0, nil
}

type mockSubscriberRepository struct {
	subscriber.Repository
	GetBySIDFunc func(ctx context.Context, sid string) (*subscriber.Subscriber, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*subscriber.Subscriber, error)
}

func (m *mockSubscriberRepository) GetBySID(ctx context.Context, sid string) (*subscriber.Subscriber, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockSubscriberRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*subscriber.Subscriber, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*subscriber.Subscriber{}, nil
}

type mockCityRepository struct {
	city.Repository
	GetBySIDFunc func(ctx context.Context, sid string) (*city.City, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*city.City, error)
}

func (m *mockCityRepository) GetBySID(ctx context.Context, sid string) (*city.City, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCityRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*city.City, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*city.City{}, nil
}
