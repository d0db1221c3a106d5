package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang-migrate"
	StrategyAutoMigrate   = "auto"

	// DefaultScriptsDir is relative to the repository root
	DefaultScriptsDir = "./internal/infrastructure/migration/scripts"
)

// Versioned is implemented by the script based strategies
type Versioned interface {
	Strategy
	MigrateDown(db *gorm.DB, steps int) error
	GetVersion(db *gorm.DB) (version int64, dirty bool, err error)
}

// ScriptsPath returns the absolute script directory for a strategy. goose and
// golang-migrate use different file layouts so each has its own folder.
func ScriptsPath(baseDir, strategy string) (string, error) {
	if baseDir == "" {
		baseDir = DefaultScriptsDir
	}
	abs, err := filepath.Abs(filepath.Join(baseDir, strategy))
	if err != nil {
		return "", fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	return abs, nil
}

// NewStrategy builds a strategy by name
func NewStrategy(name, baseDir string, log logger.Interface) (Strategy, error) {
	switch name {
	case "", StrategyGoose:
		path, err := ScriptsPath(baseDir, StrategyGoose)
		if err != nil {
			return nil, err
		}
		return NewGooseStrategy(path, log), nil
	case StrategyGolangMigrate:
		path, err := ScriptsPath(baseDir, StrategyGolangMigrate)
		if err != nil {
			return nil, err
		}
		return NewGolangMigrateStrategy(path, log), nil
	case StrategyAutoMigrate:
		return NewGormAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a new migration manager with a specific strategy
func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Describe returns a one-line description of a strategy name
func Describe(strategyName string) string {
	switch strategyName {
	case StrategyAutoMigrate:
		return "GORM AutoMigrate - schema derived from model definitions"
	case StrategyGolangMigrate:
		return "golang-migrate - versioned up/down SQL script pairs"
	case StrategyGoose:
		return "goose - versioned SQL scripts with Up/Down sections"
	default:
		return "Unknown migration strategy"
	}
}
