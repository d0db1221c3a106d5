package http

import (
	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/infrastructure/repository"
	"github.com/telebill/telebill/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	adminRepo      admin.Repository
	subscriberRepo subscriber.Repository
	cityRepo       city.Repository
	callRepo       call.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		adminRepo:      repository.NewAdminRepository(db, log),
		subscriberRepo: repository.NewSubscriberRepository(db, log),
		cityRepo:       repository.NewCityRepository(db, log),
		callRepo:       repository.NewCallRepository(db, log),
	}
}
