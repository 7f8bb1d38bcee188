// Package app wires configuration, storage, services, and transport together.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/taskboard/taskboard-backend/internal/adapter/postgres"
	projectrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/project"
	taskrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/task"
	tokenrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/token"
	userrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/user"
	jwtauth "github.com/taskboard/taskboard-backend/internal/auth"
	"github.com/taskboard/taskboard-backend/internal/config"
	authsvc "github.com/taskboard/taskboard-backend/internal/service/auth"
	projectsvc "github.com/taskboard/taskboard-backend/internal/service/project"
	tasksvc "github.com/taskboard/taskboard-backend/internal/service/task"
	"github.com/taskboard/taskboard-backend/internal/transport/middleware"
	"github.com/taskboard/taskboard-backend/internal/transport/rest"
	"github.com/taskboard/taskboard-backend/migrations"
)

// Run is the application entry point. It loads configuration, initializes the
// logger and database, applies migrations, wires services and handlers, and
// serves HTTP until ctx is canceled.
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

	if err := Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	projectService := projectsvc.NewService(logger, projects, tasks, users, txManager)
	taskService := tasksvc.NewService(logger, tasks, projects, users)

	// Transport
	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Projects: rest.NewProjectHandler(projectService, taskService, logger),
		Tasks:    rest.NewTaskHandler(taskService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(300),
		middleware.Auth(authService),
	)(mux)

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

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// Migrate applies all pending embedded migrations. goose requires *sql.DB, so
// this opens a short-lived database/sql connection next to the pgx pool.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		slog.Info("migration applied", slog.String("source", r.Source.Path))
	}

	return nil
}
