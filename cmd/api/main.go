package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dogs-api/internal/adapters/storage/gormstore"
	mem "dogs-api/internal/adapters/storage/memory"
	pg "dogs-api/internal/adapters/storage/postgres"
	"dogs-api/internal/config"
	"dogs-api/internal/domain/dogs"
	"dogs-api/internal/platform/logger"
	"dogs-api/internal/router"
)

const shutdownTimeout = 10 * time.Second

//	@title			Dogs API
//	@version		1.0
//	@description	CRUD over the dog resource.
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "dogs-api",
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Warn("closing store", map[string]any{"error": err})
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			DogRepo:    repo,
			Log:        log,
			StrictHTTP: cfg.Server.StrictHTTP,
		}),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info(fmt.Sprintf("🚀 Server ready at: http://localhost:%d", cfg.Server.Port), map[string]any{
		"env":    cfg.Env,
		"store":  cfg.Store.Driver,
		"strict": cfg.Server.StrictHTTP,
	})

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore construye el cliente de datos según store.driver y aplica las
// migraciones para los drivers SQL.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (dogs.Repository, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres, config.DriverGorm:
		if !cfg.Store.SkipMigrations {
			if err := pg.Migrate(ctx, cfg.Store.DSN, log); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
	}

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.Store.DSN, log)
		if err != nil {
			return nil, err
		}
		return pg.NewDogsRepo(db), nil
	case config.DriverGorm:
		db, err := gormstore.Open(ctx, cfg.Store.DSN, log)
		if err != nil {
			return nil, err
		}
		return gormstore.NewDogsRepo(db), nil
	default:
		return mem.NewDogRepo(), nil
	}
}
