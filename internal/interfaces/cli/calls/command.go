package calls

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telebill/telebill/internal/application/call/usecases"
	"github.com/telebill/telebill/internal/infrastructure/database"
	"github.com/telebill/telebill/internal/infrastructure/repository"
	"github.com/telebill/telebill/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calls",
		Short: "Call ledger maintenance",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "sweep-orphans",
		Short: "Delete calls whose subscriber or city no longer exists",
		RunE:  runSweep,
	})

	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.Options{Env: env, ConfigPath: configPath, WithDatabase: true})
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewSweepOrphansUseCase(repository.NewCallRepository(database.Get(), log), log)
	res, err := uc.Execute(context.Background())
	if err != nil {
		return fmt.Errorf("orphan sweep failed: %w", err)
	}

	fmt.Printf("✅ Removed %d orphaned calls\n", res.Removed)
	return nil
}
