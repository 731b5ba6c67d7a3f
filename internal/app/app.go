// Package app wires configuration, storage, the use case and the HTTP server
// together and runs them until the context is canceled.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/bookmarker/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/bookmarker/internal/auth"
	"github.com/vadimbarashkov/bookmarker/internal/config"
	"github.com/vadimbarashkov/bookmarker/internal/metrics"
	"github.com/vadimbarashkov/bookmarker/internal/repository"
	"github.com/vadimbarashkov/bookmarker/internal/shortcode"
	"github.com/vadimbarashkov/bookmarker/internal/usecase"
	"github.com/vadimbarashkov/bookmarker/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/bookmarker/internal/adapter/delivery/http"
	pgrepo "github.com/vadimbarashkov/bookmarker/internal/adapter/repository/postgres"
)

const shutdownTimeout = 10 * time.Second

func NewLogger(cfg *config.Config) *httplog.Logger {
	prod := cfg.Env == config.EnvProd

	return httplog.NewLogger("bookmarker", httplog.Options{
		JSON:     prod,
		Concise:  !prod,
		LogLevel: cfg.SlogLevel(),
		Tags: map[string]string{
			"env": cfg.Env,
		},
		RequestHeaders: !prod,
	})
}

// openStore returns the configured store and a function releasing its resources.
func openStore(ctx context.Context, cfg *config.Config, logger *httplog.Logger) (repository.Store, func() error, error) {
	const op = "app.openStore"

	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage, data will not survive a restart")
		return memory.NewStore(), func() error { return nil }, nil
	}

	db, err := postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	version, err := postgres.Migrate(cfg.MigrationsPath, cfg.Postgres.DSN())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}
	logger.Info("database migrated", "version", version)

	return pgrepo.NewBookmarkRepository(db), db.Close, nil
}

// NewHandler builds the complete HTTP handler on top of store.
func NewHandler(cfg *config.Config, store repository.Store, logger *httplog.Logger) (http.Handler, error) {
	const op = "app.NewHandler"

	gen, err := shortcode.NewGenerator(cfg.ShortCodeLength)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create short code generator: %w", op, err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create token service: %w", op, err)
	}

	bookmarkUseCase := usecase.NewBookmarkUseCase(store, gen)

	return delivery.NewRouter(logger, bookmarkUseCase, tokens, metrics.New()), nil
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close store", "err", err)
		}
	}()

	router, err := NewHandler(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", server.Addr, "env", cfg.Env, "storage", cfg.Storage)

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
