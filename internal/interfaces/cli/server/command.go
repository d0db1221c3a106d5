package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/telebill/telebill/internal/infrastructure/config"
	"github.com/telebill/telebill/internal/infrastructure/database"
	"github.com/telebill/telebill/internal/infrastructure/migration"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/telebill/telebill/internal/interfaces/http"
	"github.com/telebill/telebill/internal/shared/goroutine"
	"github.com/telebill/telebill/internal/shared/logger"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Telebill HTTP API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Init(bootstrap.Options{
		Env:          env,
		ConfigPath:   configPath,
		WithDatabase: true,
	})
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"auto-migrate", autoMigrate,
		"timezone", cfg.Server.Timezone)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	redisClient := httpRouter.NewRedisClient(cfg, log)

	container := httpRouter.NewContainer(database.Get(), redisClient, cfg, log)
	container.SetupRoutes()
	defer container.Shutdown()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infow("server starting",
		"address", cfg.Server.GetAddr(),
		"mode", cfg.Server.Mode)

	serveErr := goroutine.SafeGo(log, "http-server", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Errorw("failed to start server", "error", err)
			return err
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// handleMigrations applies the schema when --auto-migrate is set, otherwise it
// only reports the current script version. SQLite is always prepared with
// AutoMigrate because the SQL scripts target MySQL.
func handleMigrations(cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	sqlite := cfg.Database.Driver == database.DriverSQLite

	if autoMigrate || sqlite {
		if cfg.Server.Mode == gin.ReleaseMode && autoMigrate {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		name := migration.StrategyGoose
		if sqlite {
			name = migration.StrategyAutoMigrate
		}
		s, err := migration.NewStrategy(name, migration.DefaultScriptsDir, log)
		if err != nil {
			return err
		}
		if err := migration.NewManager(s, log).Migrate(database.Get(), models.AllModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	log.Infow("checking migration status")

	path, err := migration.ScriptsPath(migration.DefaultScriptsDir, migration.StrategyGoose)
	if err != nil {
		log.Warnw("failed to get migration scripts path", "error", err)
		return nil
	}

	version, _, err := migration.NewGooseStrategy(path, log).GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)

	return nil
}
