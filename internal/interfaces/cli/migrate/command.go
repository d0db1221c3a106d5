package migrate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telebill/telebill/internal/infrastructure/database"
	"github.com/telebill/telebill/internal/infrastructure/migration"
	"github.com/telebill/telebill/internal/infrastructure/persistence/models"
	"github.com/telebill/telebill/internal/interfaces/cli/bootstrap"
	"github.com/telebill/telebill/internal/shared/logger"
)

var (
	env        string
	configPath string
	strategy   string
	scriptsDir string
	name       string
	steps      int
	version    int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&strategy, "strategy", migration.StrategyGoose, "Migration strategy (goose, golang-migrate, auto)")
	cmd.PersistentFlags().StringVar(&scriptsDir, "scripts", migration.DefaultScriptsDir, "Migration scripts base directory")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newForceCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name in the directory of the selected strategy.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the recorded migration version",
		Long:  `Set the golang-migrate version without running scripts and clear the dirty flag.`,
		RunE:  runForce,
	}

	cmd.Flags().IntVarP(&version, "version", "v", 0, "Version to record (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func initEnv(withDB bool) (migration.Strategy, logger.Interface, error) {
	_, log, err := bootstrap.Init(bootstrap.Options{Env: env, ConfigPath: configPath, WithDatabase: withDB})
	if err != nil {
		return nil, nil, err
	}

	s, err := migration.NewStrategy(strategy, scriptsDir, log)
	if err != nil {
		return nil, nil, err
	}
	return s, log, nil
}

func versioned(s migration.Strategy, op string) (migration.Versioned, error) {
	v, ok := s.(migration.Versioned)
	if !ok {
		return nil, fmt.Errorf("%s is not supported by the %s strategy", op, s.GetName())
	}
	return v, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	s, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "strategy", s.GetName())

	manager := migration.NewManager(s, log)
	if err := manager.Migrate(database.Get(), models.AllModels()...); err != nil {
		if errors.Is(err, migration.ErrUnsupportedDialect) {
			return fmt.Errorf("%w (use --strategy auto for sqlite)", err)
		}
		return err
	}

	fmt.Println("✅ Migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	s, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	v, err := versioned(s, "down")
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := v.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	v, err := versioned(s, "status")
	if err != nil {
		return err
	}

	version, dirty, err := v.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Strategy:        %s\n", migration.Describe(s.GetName()))
	fmt.Printf("  Current Version: %d\n", version)
	if dirty {
		fmt.Printf("  State:           dirty, fix the failed script and force the version\n")
	}

	if goose, ok := s.(*migration.GooseStrategy); ok {
		if err := goose.Status(database.Get()); err != nil {
			log.Errorw("failed to get detailed status", "error", err)
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	s, log, err := initEnv(false)
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name, "strategy", s.GetName())

	switch st := s.(type) {
	case *migration.GooseStrategy:
		if err := st.Create(name); err != nil {
			return err
		}
	case *migration.GolangMigrateStrategy:
		path, err := migration.ScriptsPath(scriptsDir, migration.StrategyGolangMigrate)
		if err != nil {
			return err
		}
		up, down, err := migration.NewGenerator(path, log).CreateMigration(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n  %s\n", up, down)
	default:
		return fmt.Errorf("create is not supported by the %s strategy", s.GetName())
	}

	fmt.Printf("✅ Migration '%s' created successfully\n", name)
	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	s, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	gm, ok := s.(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("force is only supported with --strategy %s", migration.StrategyGolangMigrate)
	}

	if err := gm.Force(database.Get(), version); err != nil {
		return err
	}

	log.Infow("migration version forced", "version", version)
	return nil
}
