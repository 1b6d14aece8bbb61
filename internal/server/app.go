// Package server initializes and runs the DashApp API server: it opens the
// database, runs migrations, wires the services and HTTP handler, and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/dashapp/internal/logging"
	"github.com/dmitrijs2005/dashapp/internal/server/config"
	handler "github.com/dmitrijs2005/dashapp/internal/server/handler/http"
	"github.com/dmitrijs2005/dashapp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dashapp/internal/server/services"
	"github.com/dmitrijs2005/dashapp/internal/server/storage"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	avatars, err := newAvatarStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("avatar store init error: %w", err)
	}

	userService := services.NewUserService(db, manager, avatars, cfg)
	taskService := services.NewTaskService(db, manager)

	h := handler.NewHandler(userService, taskService, []byte(cfg.SecretKey), cfg.UploadDir, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		handler: h.Routes(),
	}, nil
}

// newAvatarStore picks S3 when a bucket is configured, local disk otherwise.
func newAvatarStore(cfg *config.Config) (storage.Store, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	}
	return storage.NewLocalStore(cfg.UploadDir, cfg.BaseURL)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return app.db.Close()
}
