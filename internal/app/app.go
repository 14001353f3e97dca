// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/uievents-backend/internal/adapter/postgres"
	elementrepo "github.com/heartmarshall/uievents-backend/internal/adapter/postgres/element"
	eventrepo "github.com/heartmarshall/uievents-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/uievents-backend/internal/config"
	"github.com/heartmarshall/uievents-backend/internal/service/catalog"
	eventsvc "github.com/heartmarshall/uievents-backend/internal/service/event"
	"github.com/heartmarshall/uievents-backend/internal/transport/middleware"
	"github.com/heartmarshall/uievents-backend/internal/transport/rest"
)

// Run assembles and starts the application. It blocks until ctx is cancelled
// or the server fails, then shuts down gracefully within the configured
// timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Repositories and services.
	elementRepo := elementrepo.New(pool)
	eventRepo := eventrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	catalogService := catalog.NewService(logger, elementRepo, txm)
	eventService := eventsvc.NewService(logger, elementRepo, eventRepo, txm)

	if cfg.Seed.Enabled {
		if err := catalogService.Seed(ctx); err != nil {
			return fmt.Errorf("seed elements: %w", err)
		}
	}

	// Transport.
	elementsHandler := rest.NewElementsHandler(catalogService, logger)
	eventsHandler := rest.NewEventsHandler(eventService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := rest.NewRouter(elementsHandler, eventsHandler, healthHandler)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
