package admin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/telebill/telebill/internal/application/auth/usecases"
	"github.com/telebill/telebill/internal/infrastructure/auth"
	"github.com/telebill/telebill/internal/infrastructure/database"
	"github.com/telebill/telebill/internal/infrastructure/repository"
	"github.com/telebill/telebill/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	email      string
	password   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage back office administrators",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Long:  `Create an administrator who can log in to the API. The password is prompted for when --password is omitted.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Administrator email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Administrator password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(bootstrap.Options{Env: env, ConfigPath: configPath, WithDatabase: true})
	if err != nil {
		return err
	}
	defer database.Close()

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	uc := usecases.NewCreateAdminUseCase(
		repository.NewAdminRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	created, err := uc.Execute(context.Background(), usecases.CreateAdminCommand{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("✅ Admin %s created (%s)\n", created.Email, created.ID)
	return nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--password is required when stdin is not a terminal")
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return strings.TrimRight(string(first), "\r\n"), nil
}
