package commands

import (
	"fmt"
	"os"

	"pet-hub/internal/config"
	"pet-hub/internal/domain/users"
	"pet-hub/internal/platform/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pethub",
	Short: "Pet Hub - adopción, cruza y turnos veterinarios",
	Long: `Pet Hub expone el sitio de mascotas sobre HTTP.

Subcomandos:
  serve   - Levanta el servidor HTTP
  seed    - Siembra las cuentas por defecto (idempotente)
  init-db - Recrea el esquema de Postgres y siembra

Sin subcomando se comporta como serve.`,
	SilenceUsage: true,
}

// Execute corre el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file (optional)")
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	return cfg, log, nil
}

func seedAccounts(cfg *config.Config) []users.SeedAccount {
	out := make([]users.SeedAccount, 0, len(cfg.Bootstrap.Accounts))
	for _, a := range cfg.Bootstrap.Accounts {
		out = append(out, users.SeedAccount{
			Name:     a.Name,
			Email:    a.Email,
			Password: a.Password,
			Role:     a.Role,
		})
	}
	return out
}
