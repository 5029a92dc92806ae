package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xampe11/notes-app/internal/adapter/postgres"
	categoryrepo "github.com/xampe11/notes-app/internal/adapter/postgres/category"
	noterepo "github.com/xampe11/notes-app/internal/adapter/postgres/note"
	userrepo "github.com/xampe11/notes-app/internal/adapter/postgres/user"
	"github.com/xampe11/notes-app/internal/auth"
	"github.com/xampe11/notes-app/internal/config"
	authsvc "github.com/xampe11/notes-app/internal/service/auth"
	categorysvc "github.com/xampe11/notes-app/internal/service/category"
	notesvc "github.com/xampe11/notes-app/internal/service/note"
	"github.com/xampe11/notes-app/internal/transport/middleware"
	"github.com/xampe11/notes-app/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, applies migrations, wires the
// services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := runMigrations(ctx, cfg.Database, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	notes := noterepo.New(pool)
	categories := categoryrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, authsvc.Config{BcryptCost: cfg.Auth.BcryptCost})
	noteService := notesvc.NewService(logger, notes, categories, txm)
	categoryService := categorysvc.NewService(logger, categories, notes, txm)

	// Transport.
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:       rest.NewAuthHandler(authService, logger),
		Notes:      rest.NewNoteHandler(noteService, logger),
		Categories: rest.NewCategoryHandler(categoryService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),

		RequireAuth:   middleware.RequireAuth(authService),
		OptionalAuth:  middleware.OptionalAuth(authService),
		AuthRateLimit: rateLimiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
