package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/rating"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/logger"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func kyivTariff(t *testing.T) *city.City {
	t.Helper()
	d, err := city.NewDiscount(10, 15)
	require.NoError(t, err)
	return city.ReconstructCity(10, "city_kyiv", "Kyiv", 1.5, 1.0, []city.Discount{d}, testTime, testTime)
}

func testSubscriber() *subscriber.Subscriber {
	return subscriber.ReconstructSubscriber(5, "sub_a", "0501234567", "12345678", "Khreshchatyk 1", testTime, testTime)
}

func useUTC(t *testing.T) {
	t.Helper()
	biztime.SetLocation(time.UTC)
	t.Cleanup(func() { biztime.SetLocation(nil) })
}

func newCreateCall(t *testing.T, callRepo *mockCallRepository) *CreateCallUseCase {
	tariff := kyivTariff(t)
	subRepo := &mockSubscriberRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*subscriber.Subscriber, error) {
			if sid == "sub_a" {
				return testSubscriber(), nil
			}
			return nil, nil
		},
	}
	cityRepo := &mockCityRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*city.City, error) {
			if sid == "city_kyiv" {
				return tariff, nil
			}
			return nil, nil
		},
	}
	return NewCreateCallUseCase(callRepo, subRepo, cityRepo, logger.NewNopLogger())
}

// =====================================================================
// CreateCall
// =====================================================================

func TestCreateCallUseCase_Execute(t *testing.T) {
	useUTC(t)
	ctx := context.Background()

	t.Run("day call with discount", func(t *testing.T) {
		var stored *call.Call
		uc := newCreateCall(t, &mockCallRepository{
			CreateFunc: func(ctx context.Context, c *call.Call) error {
				c.SetID(1)
				stored = c
				return nil
			},
		})

		out, err := uc.Execute(ctx, CreateCallCommand{
			SubscriberSID: "sub_a",
			CitySID:       "city_kyiv",
			Duration:      900,
			Date:          json.RawMessage(`"2024-03-01T10:00:00Z"`),
		})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, uint(5), stored.SubscriberID())
		assert.Equal(t, uint(10), stored.CityID())
		assert.Equal(t, "day", out.TimeOfDay)
		assert.InDelta(t, 1912.5, out.Cost, 1e-9)
		assert.Equal(t, "sub_a", out.Subscriber)
		assert.Equal(t, "city_kyiv", out.City)
	})

	t.Run("night call from millisecond timestamp", func(t *testing.T) {
		uc := newCreateCall(t, &mockCallRepository{})

		ts := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
		out, err := uc.Execute(ctx, CreateCallCommand{
			SubscriberSID: "sub_a",
			CitySID:       "city_kyiv",
			Duration:      300,
			Date:          json.RawMessage([]byte(jsonNumber(ts.UnixMilli()))),
		})
		require.NoError(t, err)
		assert.Equal(t, "night", out.TimeOfDay)
		assert.InDelta(t, 500, out.Cost, 1e-9)
		assert.True(t, out.Date.Equal(ts))
	})

	t.Run("missing date defaults to now", func(t *testing.T) {
		uc := newCreateCall(t, &mockCallRepository{})

		before := time.Now().UTC().Add(-time.Second)
		out, err := uc.Execute(ctx, CreateCallCommand{SubscriberSID: "sub_a", CitySID: "city_kyiv", Duration: 60})
		require.NoError(t, err)
		assert.True(t, out.Date.After(before))
	})

	t.Run("unknown subscriber", func(t *testing.T) {
		uc := newCreateCall(t, &mockCallRepository{})

		_, err := uc.Execute(ctx, CreateCallCommand{SubscriberSID: "nope", CitySID: "city_kyiv", Duration: 60})
		assert.ErrorIs(t, err, subscriber.ErrSubscriberNotFound)
	})

	t.Run("unknown city", func(t *testing.T) {
		uc := newCreateCall(t, &mockCallRepository{})

		_, err := uc.Execute(ctx, CreateCallCommand{SubscriberSID: "sub_a", CitySID: "nope", Duration: 60})
		assert.ErrorIs(t, err, city.ErrCityNotFound)
	})

	t.Run("unparseable date", func(t *testing.T) {
		uc := newCreateCall(t, &mockCallRepository{
			CreateFunc: func(ctx context.Context, c *call.Call) error {
				t.Fatal("create must not be called")
				return nil
			},
		})

		for _, raw := range []string{`"yesterday"`, `1e16`, `-1e20`} {
			_, err := uc.Execute(ctx, CreateCallCommand{
				SubscriberSID: "sub_a",
				CitySID:       "city_kyiv",
				Duration:      60,
				Date:          json.RawMessage(raw),
			})
			assert.ErrorIs(t, err, call.ErrInvalidDate, "date=%s", raw)
		}
	})

	t.Run("non-positive duration", func(t *testing.T) {
		uc := newCreateCall(t, &mockCallRepository{})

		_, err := uc.Execute(ctx, CreateCallCommand{SubscriberSID: "sub_a", CitySID: "city_kyiv", Duration: 0})
		assert.ErrorIs(t, err, rating.ErrInvalidDuration)
	})
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// =====================================================================
// ListCalls
// =====================================================================

func TestListCallsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	sub := testSubscriber()
	tariff := kyivTariff(t)

	callRepo := &mockCallRepository{
		ListFunc: func(ctx context.Context) ([]*call.Call, error) {
			return []*call.Call{
				call.ReconstructCall(1, "call_ok", 5, 10, testTime, 60, call.TimeOfDayDay, 150, testTime, testTime),
				call.ReconstructCall(2, "call_no_sub", 6, 10, testTime, 60, call.TimeOfDayDay, 150, testTime, testTime),
				call.ReconstructCall(3, "call_no_city", 5, 11, testTime, 60, call.TimeOfDayDay, 150, testTime, testTime),
			}, nil
		},
	}
	subRepo := &mockSubscriberRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*subscriber.Subscriber, error) {
			assert.ElementsMatch(t, []uint{5, 6}, ids)
			return map[uint]*subscriber.Subscriber{5: sub}, nil
		},
	}
	cityRepo := &mockCityRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*city.City, error) {
			assert.ElementsMatch(t, []uint{10, 11}, ids)
			return map[uint]*city.City{10: tariff}, nil
		},
	}
	uc := NewListCallsUseCase(callRepo, subRepo, cityRepo, logger.NewNopLogger())

	out, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "call_ok", out[0].ID)
	assert.Equal(t, "0501234567", out[0].Subscriber)
	assert.Equal(t, "Kyiv", out[0].City)
}

// =====================================================================
// DeleteCall / SweepOrphans
// =====================================================================

func TestDeleteCallUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing call", func(t *testing.T) {
		var deleted uint
		repo := &mockCallRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*call.Call, error) {
				return call.ReconstructCall(9, sid, 5, 10, testTime, 60, call.TimeOfDayDay, 150, testTime, testTime), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		uc := NewDeleteCallUseCase(repo, logger.NewNopLogger())

		require.NoError(t, uc.Execute(ctx, "call_x"))
		assert.Equal(t, uint(9), deleted)
	})

	t.Run("unknown call", func(t *testing.T) {
		uc := NewDeleteCallUseCase(&mockCallRepository{}, logger.NewNopLogger())

		assert.ErrorIs(t, uc.Execute(ctx, "missing"), call.ErrCallNotFound)
	})
}

func TestSweepOrphansUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("reports removed count", func(t *testing.T) {
		repo := &mockCallRepository{
			DeleteOrphansFunc: func(ctx context.Context) (int64, error) { return 3, nil },
		}
		out, err := NewSweepOrphansUseCase(repo, logger.NewNopLogger()).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), out.Removed)
	})

	t.Run("propagates failure", func(t *testing.T) {
		boom := errors.New("boom")
		repo := &mockCallRepository{
			DeleteOrphansFunc: func(ctx context.Context) (int64, error) { return 0, boom },
		}
		_, err := NewSweepOrphansUseCase(repo, logger.NewNopLogger()).Execute(ctx)
		assert.ErrorIs(t, err, boom)
	})
}
