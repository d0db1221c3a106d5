package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/telebill/telebill/internal/interfaces/cli/admin"
	"github.com/telebill/telebill/internal/interfaces/cli/calls"
	"github.com/telebill/telebill/internal/interfaces/cli/migrate"
	"github.com/telebill/telebill/internal/interfaces/cli/seed"
	"github.com/telebill/telebill/internal/interfaces/cli/server"
)

// @title Telebill API
// @version 1.0
// @description Back office for subscriber call billing: subscribers, city tariffs and rated calls.
// @host localhost:4444
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	rootCmd := &cobra.Command{
		Use:   "telebill",
		Short: "Telebill - call billing back office",
		Long:  `Telebill rates subscriber calls against city tariffs. It ships the HTTP API, migration tools and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
		seed.NewCommand(),
		calls.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
