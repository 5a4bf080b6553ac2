package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-hub/internal/adapters/media/local"
	"pet-hub/internal/adapters/media/s3store"
	pg "pet-hub/internal/adapters/storage/postgres"
	"pet-hub/internal/config"
	"pet-hub/internal/ports/media"
	"pet-hub/internal/router"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Levanta el servidor HTTP.

Sin database.dsn usa el store en memoria. Con uploads.s3.bucket las
imágenes van a S3; si no, a uploads.dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.RunE = serveCmd.RunE
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.UsesDevSecret() {
		log.Warn("using development session secret; set SESSION_SECRET in production", nil)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() { _ = db.Close() }()
	}

	images, err := openImageStore(ctx, cfg)
	if err != nil {
		return err
	}

	opts := router.Options{
		Config: cfg,
		Logger: log,
		DB:     db,
		Images: images,
	}
	svcs := router.NewServices(opts)

	created, err := svcs.Users.SeedDefaults(ctx, seedAccounts(cfg))
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if created > 0 {
		log.Info("default accounts created", map[string]any{"count": created})
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Mount(svcs, opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": storageName(db),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", map[string]any{"err": err})
		return err
	}

	log.Info("server exited", nil)
	return nil
}

// openDatabase: DSN vacío => nil (store en memoria).
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, nil
	}
	db, err := pg.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := pg.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

func openImageStore(ctx context.Context, cfg *config.Config) (media.ImageStore, error) {
	s3cfg := cfg.Uploads.S3
	if s3cfg.Bucket == "" {
		st, err := local.New(cfg.Uploads.Dir)
		if err != nil {
			return nil, fmt.Errorf("image dir: %w", err)
		}
		return st, nil
	}
	st, err := s3store.New(ctx, s3store.Config{
		Bucket:    s3cfg.Bucket,
		Region:    s3cfg.Region,
		Endpoint:  s3cfg.Endpoint,
		AccessKey: s3cfg.AccessKey,
		SecretKey: s3cfg.SecretKey,
		Prefix:    s3cfg.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 image store: %w", err)
	}
	return st, nil
}

func storageName(db *sqlx.DB) string {
	if db == nil {
		return "memory"
	}
	return "postgres"
}
