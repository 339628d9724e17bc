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

	"github.com/heartmarshall/holyghost-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/category"
	impressionrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/impression"
	tokenrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/holyghost-backend/internal/adapter/provider/openai"
	jwtauth "github.com/heartmarshall/holyghost-backend/internal/auth"
	"github.com/heartmarshall/holyghost-backend/internal/config"
	authsvc "github.com/heartmarshall/holyghost-backend/internal/service/auth"
	"github.com/heartmarshall/holyghost-backend/internal/service/journal"
	"github.com/heartmarshall/holyghost-backend/internal/service/quiz"
	"github.com/heartmarshall/holyghost-backend/internal/transport/middleware"
	"github.com/heartmarshall/holyghost-backend/internal/transport/rest"
	"github.com/heartmarshall/holyghost-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and the HTTP transport, and
// serves until ctx is cancelled.
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

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	impressions := impressionrepo.New(pool)
	categories := categoryrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	journalService := journal.NewService(logger, impressions, categories, txManager)

	completionClient := openai.NewClient(openai.Config{
		APIKey:      cfg.Quiz.APIKey,
		BaseURL:     cfg.Quiz.BaseURL,
		Model:       cfg.Quiz.Model,
		Temperature: cfg.Quiz.Temperature,
		MaxTokens:   cfg.Quiz.MaxTokens,
		Timeout:     cfg.Quiz.Timeout,
	}, logger)
	quizService := quiz.NewService(logger, completionClient, quiz.Config{
		APIKey:      cfg.Quiz.APIKey,
		MaxAttempts: cfg.Quiz.MaxAttempts,
		BackoffBase: cfg.Quiz.BackoffBase,
	})

	mux := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Impressions: rest.NewImpressionHandler(journalService, logger),
		Categories:  rest.NewCategoryHandler(journalService, logger),
		Quiz:        rest.NewQuizHandler(quizService, journalService, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
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
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

// migrate applies goose migrations from the embedded FS. goose needs a
// *sql.DB, so this opens a short-lived stdlib connection separate from
// the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
