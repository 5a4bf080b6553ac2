package commands

import (
	"context"
	"errors"
	"fmt"

	"pet-hub/internal/router"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default accounts",
	Long: `Crea las cuentas de bootstrap que todavía no existen.

Se puede correr varias veces: las cuentas existentes no se tocan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return errors.New("seed needs database.dsn (the in-memory store is seeded by serve)")
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	svcs := router.NewServices(router.Options{Config: cfg, Logger: log, DB: db})
	created, err := svcs.Users.SeedDefaults(ctx, seedAccounts(cfg))
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	log.Info("seed finished", map[string]any{"created": created})
	return nil
}
