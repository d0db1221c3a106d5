package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/shared/logger"
)

// GormAutoMigrateStrategy builds the schema from the GORM models. It is the
// only strategy that works on SQLite.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

// Migrate auto-migrates the given models, or every telebill model when none are given
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = models.AllModels()
	}

	s.logger.Infow("running gorm auto-migrate", "models_count", len(modelList))
	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return StrategyAutoMigrate
}
