// Package bootstrap loads the process environment shared by every CLI command.
package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/infrastructure/config"
	"github.com/telebill/telebill/internal/infrastructure/database"
	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/logger"
)

// Options selects what Init prepares.
type Options struct {
	Env        string
	ConfigPath string
	// WithDatabase opens the process database connection.
	WithDatabase bool
}

// Init loads configuration and initializes the logger and business timezone,
// plus the database when requested. Callers own database.Close.
func Init(opts Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(GinMode(opts.Env), opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	// Day and night are decided in the business timezone
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if opts.WithDatabase {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, log, nil
}

// GinMode maps an environment name to a gin mode, defaulting to debug.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
