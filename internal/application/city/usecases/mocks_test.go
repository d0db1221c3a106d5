package usecases

import (
	"context"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
)

type mockCityRepository struct {
	CreateFunc       func(ctx context.Context, c *city.City) error
	UpdateFunc       func(ctx context.Context, c *city.City) error
	DeleteFunc       func(ctx context.Context, id uint) error
	GetBySIDFunc     func(ctx context.Context, sid string) (*city.City, error)
	GetByNameFunc    func(ctx context.Context, name string) (*city.City, error)
	GetByIDsFunc     func(ctx context.Context, ids []uint) (map[uint]*city.City, error)
	ListFunc         func(ctx context.Context) ([]*city.City, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
}

func (m *mockCityRepository) Create(ctx context.Context, c *city.City) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(1)
	return nil
}

func (m *mockCityRepository) Update(ctx context.Context, c *city.City) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCityRepository) GetBySID(ctx context.Context, sid string) (*city.City, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCityRepository) GetByName(ctx context.Context, name string) (*city.City, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCityRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*city.City, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*city.City{}, nil
}

func (m *mockCityRepository) List(ctx context.Context) ([]*city.City, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

// mockCallRepository only implements the cascade paths; the rest panics.
type mockCallRepository struct {
	call.Repository
	DeleteByCityIDFunc func(ctx context.Context, cityID uint) (int64, error)
}

func (m *mockCallRepository) DeleteByCityID(ctx context.Context, cityID uint) (int64, error) {
	if m.DeleteByCityIDFunc != nil {
		return m.DeleteByCityIDFunc(ctx, cityID)
	}
	return 0, nil
}

// mockTransactor runs fn inline and reports whether it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
