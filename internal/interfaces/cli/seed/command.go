package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telebill/telebill/internal/infrastructure/database"
	"github.com/telebill/telebill/internal/infrastructure/persistence/seeds"
	"github.com/telebill/telebill/internal/infrastructure/repository"
	"github.com/telebill/telebill/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCitiesCommand())

	return cmd
}

func newCitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "Import city tariffs",
		Long: `Import city tariffs from a YAML file, or the built-in defaults when --file is omitted.
Every tariff is validated before anything is written. Cities whose name already exists are skipped.`,
		RunE: runCities,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Tariff YAML file (see configs/tariffs.example.yaml)")

	return cmd
}

func runCities(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.Options{Env: env, ConfigPath: configPath, WithDatabase: true})
	if err != nil {
		return err
	}
	defer database.Close()

	tariffs := seeds.DefaultTariffs
	if file != "" {
		tariffs, err = seeds.LoadTariffFile(file)
		if err != nil {
			return err
		}
	}

	res, err := seeds.SeedCities(context.Background(), repository.NewCityRepository(database.Get(), log), tariffs, log)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Cities seeded: %d created, %d skipped\n", res.Created, res.Skipped)
	return nil
}
