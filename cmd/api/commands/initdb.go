package commands

import (
	"context"
	"errors"
	"fmt"

	pg "pet-hub/internal/adapters/storage/postgres"
	"pet-hub/internal/router"

	"github.com/spf13/cobra"
)

var confirmReset bool

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Drop and recreate the schema, then seed",
	Long: `Borra todas las tablas, las vuelve a crear y siembra las cuentas por defecto.

Examples:
  pethub init-db --yes                 # Recrea el esquema de database.dsn`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInitDB(cmd.Context())
	},
}

func init() {
	initDBCmd.Flags().BoolVar(&confirmReset, "yes", false, "Confirm that all data will be deleted")
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(ctx context.Context) error {
	if !confirmReset {
		return errors.New("init-db deletes all data; re-run with --yes")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return errors.New("init-db needs database.dsn")
	}

	db, err := pg.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := pg.Reset(ctx, db); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}
	log.Warn("database reset", nil)

	svcs := router.NewServices(router.Options{Config: cfg, Logger: log, DB: db})
	created, err := svcs.Users.SeedDefaults(ctx, seedAccounts(cfg))
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	log.Info("database initialized", map[string]any{"accounts": created})
	return nil
}
