package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/logger"
)

// =============================================================================
// Test helpers
// =============================================================================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

type testRepos struct {
	db          *gorm.DB
	cities      city.Repository
	subscribers subscriber.Repository
	calls       call.Repository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	db := setupTestDB(t)
	log := logger.NewNopLogger()
	return &testRepos{
		db:          db,
		cities:      NewCityRepository(db, log),
		subscribers: NewSubscriberRepository(db, log),
		calls:       NewCallRepository(db, log),
	}
}

func (r *testRepos) createCity(t *testing.T, name string, discounts ...city.DiscountInput) *city.City {
	t.Helper()
	c, err := city.NewCity(name, 1.5, 1.0, discounts)
	require.NoError(t, err)
	require.NoError(t, r.cities.Create(context.Background(), c))
	return c
}

func (r *testRepos) createSubscriber(t *testing.T, phone string) *subscriber.Subscriber {
	t.Helper()
	s, err := subscriber.NewSubscriber(phone, "12345678", "Kyiv, Khreshchatyk 1")
	require.NoError(t, err)
	require.NoError(t, r.subscribers.Create(context.Background(), s))
	return s
}

func (r *testRepos) createCall(t *testing.T, s *subscriber.Subscriber, c *city.City, date time.Time) *call.Call {
	t.Helper()
	cl, err := call.NewCall(s.ID(), c.ID(), date, 60, call.TimeOfDayDay, 150)
	require.NoError(t, err)
	require.NoError(t, r.calls.Create(context.Background(), cl))
	return cl
}
